package emulator

// BringupImage is the hardware bring-up program. It prints a banner, every
// printable character, and the Fibonacci sequence in hex, then halts.
var BringupImage = []byte{
	0x1c, 0x00, 0x00, 0x07, 0xed, 0x1f, 0x08, 0x61, 0x1f, 0x0b, 0x98, 0x01,
	0xed, 0x1d, 0x00, 0x1f, 0x12, 0x68, 0x23, 0x00, 0x24, 0xa9, 0x1f, 0x19,
	0x24, 0x23, 0x00, 0x1f, 0x1e, 0x31, 0x1a, 0xed, 0x1f, 0x23, 0x41, 0x10,
	0x21, 0x07, 0xef, 0x02, 0xef, 0x0a, 0x30, 0x0f, 0x1a, 0xef, 0x09, 0x27,
	0x20, 0x00, 0x20, 0x07, 0xef, 0x01, 0xef, 0x0f, 0x1a, 0xef, 0x05, 0x7f,
	0x0a, 0x40, 0x09, 0x35, 0x20, 0x00, 0x00, 0x07, 0xef, 0x00, 0x01, 0x07,
	0xee, 0x1f, 0x4c, 0x61, 0x01, 0xef, 0x04, 0xee, 0x0b, 0x60, 0x1d, 0x00,
	0x1f, 0x57, 0x68, 0x01, 0xee, 0x07, 0xef, 0x1e, 0x07, 0xee, 0x09, 0x49,
	0x20, 0x00, 0x0a, 0x0f, 0x00, 0x0d, 0x0f, 0x20, 0x21, 0x14, 0x00, 0x14,
	0x00, 0x14, 0x00, 0x14, 0x00, 0x1d, 0x00, 0x1f, 0x76, 0x81, 0x23, 0x00,
	0x21, 0x1d, 0x00, 0x1f, 0x7e, 0x81, 0x23, 0x00, 0x20, 0x21, 0x15, 0x0f,
	0x15, 0xff, 0x03, 0x30, 0x22, 0x00, 0x05, 0x3a, 0x0b, 0x90, 0x09, 0x95,
	0x21, 0x03, 0x07, 0x22, 0x00, 0x21, 0x0f, 0x20, 0x00, 0x30, 0x07, 0xef,
	0x00, 0x2a, 0x0f, 0x1b, 0xef, 0x0a, 0xa5, 0x09, 0x9c, 0x1f, 0xa8, 0x61,
	0x20, 0x3a, 0x20, 0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x2c, 0x20, 0x57, 0x6f,
	0x72, 0x6c, 0x64, 0x21, 0x0a, 0x0d, 0x49, 0x27, 0x6d, 0x20, 0x61, 0x6e,
	0x20, 0x38, 0x2d, 0x62, 0x69, 0x74, 0x20, 0x54, 0x54, 0x4c, 0x20, 0x63,
	0x6f, 0x6d, 0x70, 0x75, 0x74, 0x65, 0x72, 0x2c, 0x20, 0x6e, 0x6f, 0x77,
	0x20, 0x77, 0x69, 0x74, 0x68, 0x20, 0x61, 0x20, 0x73, 0x74, 0x61, 0x63,
	0x6b, 0x21, 0x20, 0x3a, 0x44, 0x0a, 0x0d, 0x00,
}
