package snor

// Chip describes one supported SPI NOR flash part: its JEDEC identity,
// geometry and supply voltage range. Addr4B is declared per part and is
// trusted as given, it is not derived from the capacity.
type Chip struct {
	Name           string
	ManufacturerID uint8
	JedecID        uint32
	SectorSize     uint32
	Sectors        uint32
	Addr4B         bool
	VccMin         float32
	VccMax         float32
}

// Capacity returns the total device size in bytes.
func (c Chip) Capacity() int64 {
	return int64(c.SectorSize) * int64(c.Sectors)
}

// chips is the builtin part table. Scan order matters: identification
// returns the first exact or family match and breaks fuzzy-distance ties
// by table order, so this stays an ordered slice rather than a map.
var chips = []Chip{
	// SPANSION
	{"FL016AIF", 0x01, 0x02140000, 64 * 1024, 32, false, 2.70, 3.60},
	{"S25FL016P", 0x01, 0x02144d00, 64 * 1024, 32, false, 2.70, 3.60},
	{"S25FL032P", 0x01, 0x02154d00, 64 * 1024, 64, false, 2.70, 3.60},
	{"FL064AIF", 0x01, 0x02160000, 64 * 1024, 128, false, 2.70, 3.60},
	{"S25FL064P", 0x01, 0x02164d00, 64 * 1024, 128, false, 2.70, 3.60},
	{"S25FL256S", 0x01, 0x02194d01, 64 * 1024, 512, true, 2.70, 3.60},
	{"S25FL128P", 0x01, 0x20180301, 64 * 1024, 256, false, 2.70, 3.60},
	{"S25FL129P", 0x01, 0x20184d01, 64 * 1024, 256, false, 2.70, 3.60},
	{"S25FL116K", 0x01, 0x40150140, 64 * 1024, 32, false, 2.70, 3.60},
	{"S25FL132K", 0x01, 0x40160140, 64 * 1024, 64, false, 2.70, 3.60},
	{"S25FL164K", 0x01, 0x40170140, 64 * 1024, 128, false, 2.70, 3.60},
	// XTX
	{"XT25F02E", 0x0b, 0x40120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"XT25F04D", 0x0b, 0x40130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"XT25F08B", 0x0b, 0x40140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"XT25F16B", 0x0b, 0x40150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"XT25F32F", 0x0b, 0x40160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"XT25F64F", 0x0b, 0x40170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"XT25F128F", 0x0b, 0x40180000, 64 * 1024, 256, false, 2.70, 3.60},
	{"XT25W02E", 0x0b, 0x60120000, 64 * 1024, 4, false, 1.65, 3.60},
	{"XT25W04D", 0x0b, 0x60130000, 64 * 1024, 8, false, 1.65, 3.60},
	{"XT25Q08D", 0x0b, 0x60140000, 64 * 1024, 16, false, 1.65, 2.00},
	{"XT25Q16D", 0x0b, 0x60150000, 64 * 1024, 32, false, 1.65, 2.00},
	{"XT25Q64D", 0x0b, 0x60170000, 64 * 1024, 128, false, 1.65, 2.00},
	{"XT25F128D", 0x0b, 0x60180000, 64 * 1024, 256, false, 1.65, 2.00},
	// EON
	{"EN25B10T", 0x1c, 0x20110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"EN25B20T", 0x1c, 0x20120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"EN25B40T", 0x1c, 0x20130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"EN25B80T", 0x1c, 0x20140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"EN25B16T", 0x1c, 0x20150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"EN25B32T", 0x1c, 0x20160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"EN25B64T", 0x1c, 0x20170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"EN25F64", 0x1c, 0x20171c20, 64 * 1024, 128, false, 2.70, 3.60},
	{"EN25Q40A", 0x1c, 0x30130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"EN25Q80B", 0x1c, 0x30140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"EN25Q16", 0x1c, 0x30151c30, 64 * 1024, 32, false, 2.70, 3.60},
	{"EN25Q32C", 0x1c, 0x30160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"EN25Q64", 0x1c, 0x30170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"EN25Q128", 0x1c, 0x30181c30, 64 * 1024, 256, false, 2.70, 3.60},
	{"EN25F10A", 0x1c, 0x31110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"EN25F20A", 0x1c, 0x31120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"EN25F40", 0x1c, 0x31130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"EN25F80", 0x1c, 0x31140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"EN25F16", 0x1c, 0x31151c31, 64 * 1024, 32, false, 2.70, 3.60},
	{"EN25F32", 0x1c, 0x31161c30, 64 * 1024, 64, false, 2.70, 3.60},
	{"EN25S10A", 0x1c, 0x38110000, 64 * 1024, 2, false, 1.65, 1.95},
	{"EN25S20A", 0x1c, 0x38120000, 64 * 1024, 4, false, 1.65, 1.95},
	{"EN25S40A", 0x1c, 0x38130000, 64 * 1024, 8, false, 1.65, 1.95},
	{"EN25S80B", 0x1c, 0x38140000, 64 * 1024, 16, false, 1.65, 1.95},
	{"EN25S16B", 0x1c, 0x38150000, 64 * 1024, 32, false, 1.65, 1.95},
	{"EN25S64A", 0x1c, 0x38170000, 64 * 1024, 128, false, 1.65, 1.95},
	{"EN25QE32A", 0x1c, 0x41160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"EN25E10A", 0x1c, 0x42110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"EN25E40A", 0x1c, 0x42130000, 64 * 1024, 4, false, 2.70, 3.60},
	{"EN25SE16A", 0x1c, 0x48150000, 64 * 1024, 32, false, 1.65, 1.95},
	{"EN25SE32A", 0x1c, 0x48160000, 64 * 1024, 64, false, 1.65, 1.95},
	{"EN25T80", 0x1c, 0x51140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"EN25QA32B", 0x1c, 0x60160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"EN25QA64A", 0x1c, 0x60170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"EN25QA128A", 0x1c, 0x60180000, 64 * 1024, 256, false, 2.70, 3.60},
	{"EN25QW16A", 0x1c, 0x61150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"EN25QW32A", 0x1c, 0x61160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"EN25QH16", 0x1c, 0x70151c70, 64 * 1024, 32, false, 2.70, 3.60},
	{"EN25QH32B", 0x1c, 0x70160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"EN25QH64A", 0x1c, 0x70171c70, 64 * 1024, 128, false, 2.70, 3.60},
	{"EN25QH128A", 0x1c, 0x70181c70, 64 * 1024, 256, false, 2.70, 3.60},
	{"EN25Q256", 0x1c, 0x70191c70, 64 * 1024, 512, true, 2.70, 3.60},
	{"EN25QX64A", 0x1c, 0x71170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"EN25QX128A", 0x1c, 0x71180000, 64 * 1024, 256, false, 2.70, 3.60},
	{"EN25QX256A", 0x1c, 0x71190000, 64 * 1024, 512, true, 2.70, 3.60},
	{"EN25QY256A", 0x1c, 0x73190000, 64 * 1024, 512, true, 2.70, 3.60},
	{"EN25SX64A", 0x1c, 0x78170000, 64 * 1024, 128, false, 1.65, 1.95},
	{"EN25SX128A", 0x1c, 0x78180000, 64 * 1024, 256, false, 1.65, 1.95},
	// ATMEL
	{"AT26DF161", 0x1f, 0x46000000, 64 * 1024, 32, false, 2.70, 3.60},
	{"AT25DF321", 0x1f, 0x47000000, 64 * 1024, 64, false, 2.70, 3.60},
	// MICRON
	{"M25P10", 0x20, 0x20110000, 64 * 1024, 2, false, 2.30, 3.60},
	{"M25P20", 0x20, 0x20120000, 64 * 1024, 4, false, 2.30, 3.60},
	{"M25P40", 0x20, 0x20130000, 64 * 1024, 8, false, 2.30, 3.60},
	{"M25P80", 0x20, 0x20140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"M25P016", 0x20, 0x20150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"M25P32", 0x20, 0x20160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"M25P64", 0x20, 0x20170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"M25P128", 0x20, 0x20180000, 64 * 1024, 256, false, 2.70, 3.60},
	{"XM25QH10B", 0x20, 0x40110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"XM25QH20B", 0x20, 0x40120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"XM25QH40B", 0x20, 0x40130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"XM25QH80B", 0x20, 0x40140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"XM25QH16C", 0x20, 0x40150000, 64 * 1024, 32, false, 2.30, 3.60},
	{"XM25QH32B", 0x20, 0x40160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"XM25QH64C", 0x20, 0x40170000, 64 * 1024, 128, false, 2.30, 3.60},
	{"XM25QH128C", 0x20, 0x40182070, 64 * 1024, 256, false, 2.30, 3.60},
	{"XM25QH256C", 0x20, 0x40190000, 64 * 1024, 512, true, 2.30, 3.60},
	{"XM25QH512C", 0x20, 0x40200000, 64 * 1024, 1024, true, 2.30, 3.60},
	{"XM25LU64C", 0x20, 0x41170000, 64 * 1024, 128, false, 1.65, 1.95},
	{"XM25LU128C", 0x20, 0x41180000, 64 * 1024, 256, false, 1.65, 1.95},
	{"XM25QU256C", 0x20, 0x41190000, 64 * 1024, 512, true, 1.65, 1.95},
	{"XM25QU512C", 0x20, 0x41200000, 64 * 1024, 1024, true, 1.65, 1.95},
	{"XM25QW16C", 0x20, 0x42150000, 64 * 1024, 32, false, 1.65, 3.60},
	{"XM25QW32C", 0x20, 0x42160000, 64 * 1024, 64, false, 1.65, 3.60},
	{"XM25QW64C", 0x20, 0x42170000, 64 * 1024, 128, false, 1.65, 3.60},
	{"XM25QW128C", 0x20, 0x42180000, 64 * 1024, 256, false, 1.65, 3.60},
	{"XM25QW256C", 0x20, 0x42190000, 64 * 1024, 512, true, 1.65, 3.60},
	{"XM25QW512C", 0x20, 0x42200000, 64 * 1024, 1024, true, 1.65, 3.60},
	{"XM25QU41B", 0x20, 0x50130000, 64 * 1024, 8, false, 1.65, 1.95},
	{"XM25QU80B", 0x20, 0x50140000, 64 * 1024, 16, false, 1.65, 1.95},
	{"XM25QU16C", 0x20, 0x50150000, 64 * 1024, 32, false, 1.65, 1.95},
	{"XM25LU32C", 0x20, 0x50160000, 64 * 1024, 64, false, 1.65, 1.95},
	{"XM25QH32A", 0x20, 0x70160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"XM25QH64A", 0x20, 0x70170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"XM25QH128A", 0x20, 0x70182070, 64 * 1024, 256, false, 2.70, 3.60},
	{"N25Q032A", 0x20, 0xba160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"N25Q064A", 0x20, 0xba170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"MT25QL64AB", 0x20, 0xba170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"N25Q128A", 0x20, 0xba180000, 64 * 1024, 256, false, 2.70, 3.60},
	{"MT25QL128AB", 0x20, 0xba180000, 64 * 1024, 256, false, 2.70, 3.60},
	{"N25Q256A", 0x20, 0xba190000, 64 * 1024, 512, true, 2.70, 3.60},
	{"MT25QL256AB", 0x20, 0xba190000, 64 * 1024, 512, true, 2.70, 3.60},
	{"MT25QL512AB", 0x20, 0xba200000, 64 * 1024, 1024, true, 2.70, 3.60},
	{"N25Q032A", 0x20, 0xbb160000, 64 * 1024, 64, false, 1.70, 2.00},
	{"N25Q064A", 0x20, 0xbb170000, 64 * 1024, 128, false, 1.70, 2.00},
	{"MT25QU64AB", 0x20, 0xbb170000, 64 * 1024, 128, false, 1.70, 2.00},
	{"N25Q128A", 0x20, 0xbb180000, 64 * 1024, 256, false, 1.70, 2.00},
	{"MT25QU128AB", 0x20, 0xbb180000, 64 * 1024, 256, false, 1.70, 2.00},
	{"MT25QU256AB", 0x20, 0xbb190000, 64 * 1024, 512, true, 1.70, 2.00},
	{"MT25QU512AB", 0x20, 0xbb200000, 64 * 1024, 1024, true, 1.70, 2.00},
	// AMIC
	{"A25L10PU", 0x37, 0x20110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"A25L20PU", 0x37, 0x20120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"A25L40PU", 0x37, 0x20120000, 64 * 1024, 8, false, 2.70, 3.60},
	{"A25L80PU", 0x37, 0x20140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"A25L16PU", 0x37, 0x20150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"A25L10PT", 0x37, 0x20210000, 64 * 1024, 2, false, 2.70, 3.60},
	{"A25L20PT", 0x37, 0x20220000, 64 * 1024, 4, false, 2.70, 3.60},
	{"A25L40PT", 0x37, 0x20220000, 64 * 1024, 8, false, 2.70, 3.60},
	{"A25L80PT", 0x37, 0x20240000, 64 * 1024, 16, false, 2.70, 3.60},
	{"A25L16PT", 0x37, 0x20250000, 64 * 1024, 32, false, 2.70, 3.60},
	{"A25L010", 0x37, 0x30110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"A25L020", 0x37, 0x30120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"A25L040", 0x37, 0x30130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"A25L040", 0x37, 0x30130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"A25L080", 0x37, 0x30140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"A25L016", 0x37, 0x30150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"A25L032", 0x37, 0x30160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"A25LQ080", 0x37, 0x40140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"A25LQ16", 0x37, 0x40150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"A25LQ32", 0x37, 0x40160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"A25LQ64", 0x37, 0x40170000, 64 * 1024, 128, false, 2.70, 3.60},
	// EXCELSEMI
	{"ES25P10", 0x4a, 0x20110000, 64 * 1024, 4, false, 2.70, 3.60},
	{"ES25P20", 0x4a, 0x20120000, 64 * 1024, 8, false, 2.70, 3.60},
	{"ES25P40", 0x4a, 0x20130000, 64 * 1024, 16, false, 2.70, 3.60},
	{"ES25P80", 0x4a, 0x20140000, 64 * 1024, 32, false, 2.70, 3.60},
	{"ES25P16", 0x4a, 0x20150000, 64 * 1024, 64, false, 2.70, 3.60},
	{"ES25P32", 0x4a, 0x20160000, 64 * 1024, 128, false, 2.70, 3.60},
	{"ES25M40A", 0x4a, 0x32130000, 64 * 1024, 16, false, 2.70, 3.60},
	{"ES25M80A", 0x4a, 0x32140000, 64 * 1024, 32, false, 2.70, 3.60},
	{"ES25M16A", 0x4a, 0x32150000, 64 * 1024, 64, false, 2.70, 3.60},
	// DOUQI
	{"DQ25Q64AS", 0x54, 0x40170000, 64 * 1024, 128, false, 2.70, 3.60},
	// Zbit
	{"ZB25LD10A", 0x5e, 0x10110000, 64 * 1024, 2, false, 1.65, 1.95},
	{"ZB25LD20A", 0x5e, 0x10120000, 64 * 1024, 4, false, 1.65, 1.95},
	{"ZB25LD40B", 0x5e, 0x10130000, 64 * 1024, 8, false, 1.65, 1.95},
	{"ZB25LD80", 0x5e, 0x10140000, 64 * 1024, 16, false, 1.65, 1.95},
	{"ZB25D10A", 0x5e, 0x32110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"ZB25D20A", 0x5e, 0x32120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"ZB25D40B", 0x5e, 0x32130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"ZB25D80B", 0x5e, 0x32140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"ZB25VQ16", 0x5e, 0x40150000, 64 * 1024, 32, false, 2.30, 3.60},
	{"ZB25VQ32", 0x5e, 0x40160000, 64 * 1024, 64, false, 2.30, 3.60},
	{"ZB25VQ64", 0x5e, 0x40170000, 64 * 1024, 128, false, 2.30, 3.60},
	{"ZB25VQ128", 0x5e, 0x40180000, 64 * 1024, 256, false, 2.30, 3.60},
	{"ZB25LQ16", 0x5e, 0x50150000, 64 * 1024, 32, false, 1.65, 1.95},
	{"ZB25LQ32", 0x5e, 0x50160000, 64 * 1024, 64, false, 1.65, 1.95},
	{"ZB25LQ64", 0x5e, 0x50170000, 64 * 1024, 128, false, 1.65, 1.95},
	{"ZB25LQ128", 0x5e, 0x50180000, 64 * 1024, 256, false, 1.65, 1.95},
	{"ZB25VQ20A", 0x5e, 0x60120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"ZB25VQ40A", 0x5e, 0x60130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"ZB25VQ80A", 0x5e, 0x60140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"ZB25VQ16A", 0x5e, 0x60150000, 64 * 1024, 32, false, 2.70, 3.60},
	// ONSemi
	{"LE25U20AMB", 0x62, 0x06120000, 64 * 1024, 4, false, 2.30, 3.60},
	{"LE25U40CMC", 0x62, 0x06130000, 64 * 1024, 8, false, 2.30, 3.60},
	// Boya
	{"BY25Q05AW", 0x68, 0x10100000, 64 * 1024, 1, false, 1.65, 3.60},
	{"BY25Q10AW", 0x68, 0x10110000, 64 * 1024, 2, false, 1.65, 3.60},
	{"BY25Q20BL", 0x68, 0x10120000, 64 * 1024, 4, false, 1.65, 2.00},
	{"BY25Q40BL", 0x68, 0x10130000, 64 * 1024, 8, false, 1.65, 2.10},
	{"BY25Q80AW", 0x68, 0x10140000, 64 * 1024, 16, false, 1.65, 2.00},
	{"BY25Q16BL", 0x68, 0x10150000, 64 * 1024, 32, false, 1.65, 2.00},
	{"BY25D05AS", 0x68, 0x40100000, 64 * 1024, 1, false, 2.70, 3.60},
	{"BY25D10AS", 0x68, 0x40110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"BY25D20AS", 0x68, 0x40120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"BY25D40AS", 0x68, 0x40130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"BY25Q80BS", 0x68, 0x40140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"BY25Q16BS", 0x68, 0x40150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"BY25Q32BS", 0x68, 0x40160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"BY25Q64AS", 0x68, 0x40170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"BY25Q128AS", 0x68, 0x40180000, 64 * 1024, 256, false, 2.70, 3.60},
	{"BY25Q256ES", 0x68, 0x40190000, 64 * 1024, 512, true, 2.70, 3.60},
	{"BY25Q10AL", 0x68, 0x60110000, 64 * 1024, 2, false, 1.65, 2.00},
	{"BY25Q20AL", 0x68, 0x60120000, 64 * 1024, 4, false, 1.65, 2.00},
	{"BY25Q40AL", 0x68, 0x60130000, 64 * 1024, 8, false, 1.65, 2.00},
	{"BY25Q32AL", 0x68, 0x60160000, 64 * 1024, 64, false, 1.65, 2.00},
	{"BY25Q64AL", 0x68, 0x60170000, 64 * 1024, 128, false, 1.65, 2.00},
	{"BY25Q128EL", 0x68, 0x60180000, 64 * 1024, 256, false, 1.65, 2.00},
	// PFLASH
	{"Pm25LQ512B", 0x7f, 0x9d200500, 64 * 1024, 1, false, 2.70, 3.60},
	{"Pm25LQ010B", 0x7f, 0x9d211000, 64 * 1024, 2, false, 2.70, 3.60},
	{"Pm25LQ020B", 0x7f, 0x9d421100, 64 * 1024, 4, false, 2.70, 3.60},
	{"PM25LQ016", 0x7f, 0x9d450000, 64 * 1024, 32, false, 2.30, 3.60},
	{"PM25LQ032", 0x7f, 0x9d460000, 64 * 1024, 64, false, 2.30, 3.60},
	{"PM25LQ064", 0x7f, 0x9d470000, 64 * 1024, 128, false, 2.30, 3.60},
	{"PM25LQ128", 0x7f, 0x9d480000, 64 * 1024, 256, false, 2.30, 3.60},
	{"Pm25LQ040B", 0x7f, 0x9d7e7e00, 64 * 1024, 8, false, 2.70, 3.60},
	// Puya
	{"P25Q06H", 0x85, 0x00100000, 64 * 1024, 1, false, 2.70, 3.60},
	{"P25Q40H", 0x85, 0x20130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"P25Q11H", 0x85, 0x40110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"P25Q21H", 0x85, 0x40120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"P25Q10H", 0x85, 0x60110000, 64 * 1024, 2, false, 2.30, 3.60},
	{"P25Q20H", 0x85, 0x60120000, 64 * 1024, 4, false, 2.30, 3.60},
	{"P25Q40H", 0x85, 0x60130000, 64 * 1024, 8, false, 2.30, 3.60},
	{"P25Q80H", 0x85, 0x60140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"P25Q16H", 0x85, 0x60150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"P25Q32H", 0x85, 0x60160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"P25Q64H", 0x85, 0x60170000, 64 * 1024, 128, false, 2.30, 3.60},
	{"P25Q128H", 0x85, 0x60180000, 64 * 1024, 256, false, 2.30, 3.60},
	// ESMT
	{"F25L004A", 0x8c, 0x20130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"F25L008A", 0x8c, 0x20140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"F25L016", 0x8c, 0x21150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"F25L032", 0x8c, 0x21160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"F25L064", 0x8c, 0x21170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"F25L16QA", 0x8c, 0x41158c41, 64 * 1024, 32, false, 2.70, 3.60},
	{"F25L32QA", 0x8c, 0x41168c41, 64 * 1024, 64, false, 2.70, 3.60},
	{"F25L64QA", 0x8c, 0x41170000, 64 * 1024, 128, false, 2.70, 3.60},
	// ISSI
	{"IS25LQ010", 0x9d, 0x40110000, 64 * 1024, 2, false, 2.30, 3.60},
	{"IS25LQ020", 0x9d, 0x40120000, 64 * 1024, 4, false, 2.30, 3.60},
	{"IS25LP080D", 0x9d, 0x60140000, 64 * 1024, 16, false, 2.30, 3.60},
	{"IS25LP016D", 0x9d, 0x60150000, 64 * 1024, 32, false, 2.30, 3.60},
	{"IS25LP032D", 0x9d, 0x60160000, 64 * 1024, 64, false, 2.30, 3.60},
	{"IS25LP064D", 0x9d, 0x60170000, 64 * 1024, 128, false, 2.30, 3.60},
	{"IS25LP128F", 0x9d, 0x60180000, 64 * 1024, 256, false, 2.30, 3.60},
	{"IS25LP256D", 0x9d, 0x60190000, 64 * 1024, 512, true, 2.30, 3.60},
	{"IS25LP512D", 0x9d, 0x601a0000, 64 * 1024, 1024, true, 2.30, 3.60},
	{"IS25WP040D", 0x9d, 0x70130000, 64 * 1024, 8, false, 1.65, 1.95},
	{"IS25WP080D", 0x9d, 0x70140000, 64 * 1024, 16, false, 1.65, 1.95},
	{"IS25WP016D", 0x9d, 0x70150000, 64 * 1024, 32, false, 1.65, 1.95},
	{"IS25WP032D", 0x9d, 0x70160000, 64 * 1024, 64, false, 1.65, 1.95},
	{"IS25WP064D", 0x9d, 0x70170000, 64 * 1024, 128, false, 1.65, 1.95},
	{"IS25WP128F", 0x9d, 0x70180000, 64 * 1024, 256, false, 1.65, 1.95},
	{"IS25WP256D", 0x9d, 0x70190000, 64 * 1024, 512, true, 1.65, 1.95},
	{"IS25WP512D", 0x9d, 0x701a0000, 64 * 1024, 1024, true, 1.65, 1.95},
	// Fudan
	{"FM25W04", 0xa1, 0x28130000, 64 * 1024, 8, false, 1.65, 3.60},
	{"FM25W16", 0xa1, 0x28150000, 64 * 1024, 32, false, 1.65, 3.60},
	{"FM25W32", 0xa1, 0x28160000, 64 * 1024, 64, false, 1.65, 3.60},
	{"FM25W64", 0xa1, 0x28170000, 64 * 1024, 128, false, 1.65, 3.60},
	{"FM25W128", 0xa1, 0x28180000, 64 * 1024, 256, false, 1.65, 3.60},
	{"FM25Q04", 0xa1, 0x40130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"FM25Q08", 0xa1, 0x40140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"FM25Q16", 0xa1, 0x40150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"FS25Q32", 0xa1, 0x40160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"FS25Q64", 0xa1, 0x40170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"FS25Q128", 0xa1, 0x40180000, 64 * 1024, 256, false, 2.70, 3.60},
	// Zetta
	{"ZD25Q64B", 0xba, 0x32170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"ZD25LQ128", 0xba, 0x42180000, 64 * 1024, 256, false, 1.65, 1.95},
	{"ZD25LQ64", 0xba, 0x43170000, 64 * 1024, 128, false, 1.65, 1.95},
	{"ZD25WD20B", 0xba, 0x60120000, 64 * 1024, 4, false, 1.65, 3.60},
	{"ZD25WD40B", 0xba, 0x60130000, 64 * 1024, 8, false, 1.65, 3.60},
	{"ZD25Q80C", 0xba, 0x60140000, 64 * 1024, 16, false, 2.30, 3.60},
	{"ZD25Q16B", 0xba, 0x60150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"ZD25Q32C", 0xba, 0x60160000, 64 * 1024, 64, false, 2.70, 3.60},
	// PCT
	{"PCT25VF016B", 0xbf, 0x25410000, 64 * 1024, 32, false, 2.70, 3.60},
	{"PCT25VF032B", 0xbf, 0x254a0000, 64 * 1024, 64, false, 2.70, 3.60},
	{"PCT25VF064C", 0xbf, 0x254b0000, 64 * 1024, 128, false, 2.70, 3.60},
	{"PCT25VF020B", 0xbf, 0x258c0000, 64 * 1024, 4, false, 2.70, 3.60},
	{"PCT25VF040B", 0xbf, 0x258d0000, 64 * 1024, 8, false, 2.70, 3.60},
	{"PCT25VF080B", 0xbf, 0x258e0000, 64 * 1024, 16, false, 2.70, 3.60},
	{"PCT26VF016", 0xbf, 0x26010000, 64 * 1024, 32, false, 2.70, 3.60},
	{"PCT26VF032", 0xbf, 0x26020000, 64 * 1024, 64, false, 2.70, 3.60},
	{"PCT25VF010A", 0xbf, 0x49000000, 64 * 1024, 2, false, 2.70, 3.60},
	// MXIC
	{"MX25L8005M", 0xc2, 0x2014c220, 64 * 1024, 16, false, 2.70, 3.60},
	{"MX25L1605D", 0xc2, 0x2015c220, 64 * 1024, 32, false, 2.70, 3.60},
	{"MX25L3205D", 0xc2, 0x2016c220, 64 * 1024, 64, false, 2.70, 3.60},
	{"MX25L6405D", 0xc2, 0x2017c220, 64 * 1024, 128, false, 2.70, 3.60},
	{"MX25L12805D", 0xc2, 0x2018c220, 64 * 1024, 256, false, 2.70, 3.60},
	{"MX25L25635E", 0xc2, 0x2019c220, 64 * 1024, 512, true, 2.70, 3.60},
	{"MX25L51245G", 0xc2, 0x201ac220, 64 * 1024, 1024, true, 2.70, 3.60},
	{"MX25U5121E", 0xc2, 0x25300000, 64 * 1024, 1, false, 1.65, 2.00},
	{"MX25U1001E", 0xc2, 0x25310000, 64 * 1024, 2, false, 1.65, 2.00},
	{"MX25U2035F", 0xc2, 0x25320000, 64 * 1024, 4, false, 1.65, 2.00},
	{"MX25U4035F", 0xc2, 0x25330000, 64 * 1024, 8, false, 1.65, 2.00},
	{"MX25U80356", 0xc2, 0x25340000, 64 * 1024, 16, false, 1.65, 2.00},
	{"MX25U1632F", 0xc2, 0x25350000, 64 * 1024, 32, false, 1.65, 2.00},
	{"MX25U3232F", 0xc2, 0x25360000, 64 * 1024, 64, false, 1.65, 2.00},
	{"MX25U6432F", 0xc2, 0x25370000, 64 * 1024, 128, false, 1.65, 2.00},
	{"MX25U12832F", 0xc2, 0x25380000, 64 * 1024, 256, false, 1.65, 2.00},
	{"MX25U25643G", 0xc2, 0x25390000, 64 * 1024, 512, true, 1.65, 2.00},
	{"MX25U51245G", 0xc2, 0x253a0000, 64 * 1024, 1024, true, 1.65, 2.00},
	{"MX25R2035F", 0xc2, 0x28120000, 64 * 1024, 4, false, 1.65, 3.60},
	{"MX25R4035F", 0xc2, 0x28130000, 64 * 1024, 8, false, 1.65, 3.60},
	{"MX25R8035F", 0xc2, 0x28140000, 64 * 1024, 16, false, 1.65, 3.60},
	{"MX25R1635F", 0xc2, 0x28150000, 64 * 1024, 32, false, 1.65, 3.60},
	{"MX25R3235F", 0xc2, 0x28160000, 64 * 1024, 64, false, 1.65, 3.60},
	{"MX25R6435F", 0xc2, 0x28170000, 64 * 1024, 128, false, 1.65, 3.60},
	// GigaDevice
	{"GD25F40", 0xc8, 0x20130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"GD25F80", 0xc8, 0x20140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"GD25D40", 0xc8, 0x30130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"GD25D80", 0xc8, 0x30140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"GD25D05C", 0xc8, 0x40100000, 64 * 1024, 1, false, 2.70, 3.60},
	{"GD25D10C", 0xc8, 0x40110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"GD25Q20C", 0xc8, 0x40120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"GD25Q40C", 0xc8, 0x40130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"GD25Q80C", 0xc8, 0x40140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"GD25Q16C", 0xc8, 0x40150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"GD25Q32", 0xc8, 0x40160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"GD25Q64CSIG", 0xc8, 0x40170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"GD25Q128CSIG", 0xc8, 0x4018c840, 64 * 1024, 256, false, 2.70, 3.60},
	{"GD25Q256CSIG", 0xc8, 0x4019c840, 64 * 1024, 512, true, 2.70, 3.60},
	{"GD25LD05C", 0xc8, 0x60100000, 64 * 1024, 1, false, 1.65, 2.00},
	{"GD25LD10C", 0xc8, 0x60110000, 64 * 1024, 2, false, 1.65, 2.00},
	{"GD25LD20C", 0xc8, 0x60120000, 64 * 1024, 4, false, 1.65, 2.00},
	{"GD25LD40C", 0xc8, 0x60130000, 64 * 1024, 8, false, 1.65, 2.00},
	{"GD25LQ80C", 0xc8, 0x60140000, 64 * 1024, 16, false, 1.65, 2.10},
	{"GD25LQ16C", 0xc8, 0x60150000, 64 * 1024, 32, false, 1.65, 2.10},
	{"GD25LQ32E", 0xc8, 0x60160000, 64 * 1024, 64, false, 1.65, 2.10},
	{"GD25LQ64E", 0xc8, 0x60170000, 64 * 1024, 128, false, 1.65, 2.00},
	{"GD25LQ128", 0xc8, 0x6018c840, 64 * 1024, 256, false, 1.65, 2.00},
	{"GD25LQ256D", 0xc8, 0x60190000, 64 * 1024, 512, true, 1.65, 2.00},
	{"GD25WD05C", 0xc8, 0x64100000, 64 * 1024, 1, false, 1.65, 3.60},
	{"GD25WD10C", 0xc8, 0x64110000, 64 * 1024, 2, false, 1.65, 3.60},
	{"GD25WD20E", 0xc8, 0x64120000, 64 * 1024, 4, false, 1.65, 3.60},
	{"GD25WD40E", 0xc8, 0x64130000, 64 * 1024, 8, false, 1.65, 3.60},
	{"GD25WD80C", 0xc8, 0x64140000, 64 * 1024, 16, false, 1.65, 3.60},
	{"GD25WQ20E", 0xc8, 0x65120000, 64 * 1024, 4, false, 1.65, 3.60},
	{"GD25WQ40E", 0xc8, 0x65130000, 64 * 1024, 8, false, 1.65, 3.60},
	{"GD25WQ80E", 0xc8, 0x65140000, 64 * 1024, 16, false, 1.65, 3.60},
	{"GD25WQ16E", 0xc8, 0x65150000, 64 * 1024, 32, false, 1.65, 3.60},
	{"GD25WQ32E", 0xc8, 0x65160000, 64 * 1024, 64, false, 1.65, 3.60},
	{"GD25WQ64E", 0xc8, 0x65170000, 64 * 1024, 128, false, 1.65, 3.60},
	{"GD25WQ128E", 0xc8, 0x65180000, 64 * 1024, 256, false, 1.65, 3.60},
	{"GD25WB256E", 0xc8, 0x65190000, 64 * 1024, 512, true, 1.65, 3.60},
	{"GD25LB512ME", 0xc8, 0x671a0000, 64 * 1024, 1024, true, 1.65, 2.00},
	// GigaDevice
	{"YC25Q128", 0xd8, 0x4018c840, 64 * 1024, 256, false, 2.70, 3.60},
	// PARAGON
	{"PN25F08", 0xe0, 0x40140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"PN25F16", 0xe0, 0x40150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"PN25F32", 0xe0, 0x40160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"PN25F64", 0xe0, 0x40170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"PN25F128", 0xe0, 0x40180000, 64 * 1024, 256, false, 2.70, 3.60},
	// WINBOND
	{"W25P80", 0xef, 0x20140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"W25P16", 0xef, 0x20150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"W25P32", 0xef, 0x20160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"W25X05", 0xef, 0x30100000, 64 * 1024, 1, false, 2.30, 3.60},
	{"W25X10", 0xef, 0x30110000, 64 * 1024, 2, false, 2.70, 3.60},
	{"W25X20", 0xef, 0x30120000, 64 * 1024, 4, false, 2.70, 3.60},
	{"W25X40", 0xef, 0x30130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"W25X80", 0xef, 0x30140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"W25X16", 0xef, 0x30150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"W25X32VS", 0xef, 0x30160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"W25X64", 0xef, 0x30170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"W25Q20CL", 0xef, 0x40120000, 64 * 1024, 4, false, 2.30, 3.60},
	{"W25Q40BV", 0xef, 0x40130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"W25Q80BL", 0xef, 0x40140000, 64 * 1024, 16, false, 2.30, 3.60},
	{"W25Q16DV", 0xef, 0x40150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"W25Q32BV", 0xef, 0x40160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"W25Q64BV", 0xef, 0x40170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"W25Q128BV", 0xef, 0x40180000, 64 * 1024, 256, false, 2.70, 3.60},
	{"W25Q256FV", 0xef, 0x40190000, 64 * 1024, 512, true, 2.70, 3.60},
	{"W25Q20BW", 0xef, 0x50120000, 64 * 1024, 4, false, 1.65, 1.95},
	{"W25Q80", 0xef, 0x50140000, 64 * 1024, 16, false, 2.30, 3.60},
	{"W25Q10EW", 0xef, 0x60110000, 64 * 1024, 2, false, 1.65, 1.95},
	{"W25Q20EW", 0xef, 0x60120000, 64 * 1024, 4, false, 1.65, 1.95},
	{"W25Q40EW", 0xef, 0x60130000, 64 * 1024, 8, false, 1.65, 1.95},
	{"W25Q80EW", 0xef, 0x60140000, 64 * 1024, 16, false, 1.65, 1.95},
	{"W25Q16JW", 0xef, 0x60150000, 64 * 1024, 32, false, 1.65, 1.95},
	{"W25Q32FW", 0xef, 0x60160000, 64 * 1024, 64, false, 1.65, 1.95},
	{"W25Q64DW", 0xef, 0x60170000, 64 * 1024, 128, false, 1.70, 1.95},
	{"W25Q128FW", 0xef, 0x60180000, 64 * 1024, 256, false, 1.65, 1.95},
	{"W25Q256JW", 0xef, 0x60190000, 64 * 1024, 512, true, 1.70, 1.95},
	{"W25M512JW", 0xef, 0x61190000, 64 * 1024, 1024, true, 1.70, 1.95},
	{"W25Q512JV", 0xef, 0x70200000, 64 * 1024, 1024, true, 2.70, 3.60},
	{"W25M512JV", 0xef, 0x71190000, 64 * 1024, 1024, true, 2.70, 3.60},
	{"W25Q32JW", 0xef, 0x80160000, 64 * 1024, 64, false, 1.70, 1.95},
	// Fidelix
	{"FM25Q04A", 0xf8, 0x32130000, 64 * 1024, 8, false, 2.70, 3.60},
	{"FM25Q08A", 0xf8, 0x32140000, 64 * 1024, 16, false, 2.70, 3.60},
	{"FM25Q16A", 0xf8, 0x32150000, 64 * 1024, 32, false, 2.70, 3.60},
	{"FM25Q32A", 0xf8, 0x32160000, 64 * 1024, 64, false, 2.70, 3.60},
	{"FM25Q64A", 0xf8, 0x32170000, 64 * 1024, 128, false, 2.70, 3.60},
	{"FM25Q128A", 0xf8, 0x32180000, 64 * 1024, 256, false, 2.70, 3.60},
	{"FM25M04A", 0xf8, 0x42130000, 64 * 1024, 8, false, 1.65, 1.95},
	{"FM25M08A", 0xf8, 0x42140000, 64 * 1024, 16, false, 1.65, 1.95},
	{"FM25M16A", 0xf8, 0x42150000, 64 * 1024, 32, false, 1.65, 1.95},
	{"FM25M32B", 0xf8, 0x42160000, 64 * 1024, 64, false, 1.65, 1.95},
	{"FM25M64A", 0xf8, 0x42170000, 64 * 1024, 128, false, 1.65, 1.95},
}
