package overlay

// Compiled-in RGB565 source images. KeyRGB565 marks transparent pixels.

// heroIdlePix is the standing pose of the walker sprite (13x16).
var heroIdlePix = []uint16{
	0x000E, 0x000E, 0x000E, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0x000E, 0x000E, 0x000E, 0x000E,
	0x000E, 0x000E, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0x000E,
	0x000E, 0x000E, 0x0000, 0x0000, 0x0000, 0xFD28, 0xFD28, 0x0000, 0xFD28, 0xFD28, 0x000E, 0x000E, 0x000E,
	0x000E, 0x0000, 0xFD28, 0x0000, 0xFD28, 0xFD28, 0xFD28, 0x0000, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0x000E,
	0x000E, 0x0000, 0xFD28, 0x0000, 0x0000, 0xFD28, 0xFD28, 0xFD28, 0x0000, 0xFD28, 0xFD28, 0xFD28, 0xFD28,
	0x000E, 0x0000, 0x0000, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x000E,
	0x000E, 0x000E, 0x000E, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0x000E, 0x000E,
	0x000E, 0x000E, 0xFFFF, 0xFFFF, 0xF801, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x000E, 0x000E, 0x000E, 0x000E,
	0x000E, 0xFFFF, 0xFFFF, 0xFFFF, 0xF801, 0xFFFF, 0xFFFF, 0xF801, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x000E,
	0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xF801, 0xF801, 0xF801, 0xF801, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF,
	0xFD28, 0xFD28, 0xFFFF, 0xF801, 0xFD28, 0xF801, 0xF801, 0xFD28, 0xF801, 0xFFFF, 0xFD28, 0xFD28, 0xFD28,
	0xFD28, 0xFD28, 0xFD28, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xFD28, 0xFD28, 0xFD28, 0xFD28,
	0xFD28, 0xFD28, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xFD28, 0xFD28, 0xFD28,
	0x000E, 0x000E, 0xF801, 0xF801, 0xF801, 0xF801, 0x000E, 0xF801, 0xF801, 0xF801, 0xF801, 0x000E, 0x000E,
	0x000E, 0xC300, 0xC300, 0xC300, 0xC300, 0x000E, 0x000E, 0x000E, 0xC300, 0xC300, 0xC300, 0xC300, 0x000E,
	0xC300, 0xC300, 0xC300, 0xC300, 0xC300, 0x000E, 0x000E, 0x000E, 0xC300, 0xC300, 0xC300, 0xC300, 0xC300,
}

// heroJumpPix is the airborne pose of the walker sprite (17x16).
var heroJumpPix = []uint16{
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0xFD28, 0xFD28, 0xFD28, 0xFD28,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0x000E, 0xFD28, 0xFD28, 0xFD28, 0xFD28,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xFD28, 0xFD28, 0xFD28,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0x0000, 0x0000, 0xFD28, 0xFD28, 0x0000, 0xFD28, 0xFD28, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF,
	0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0xFD28, 0x0000, 0xFD28, 0xFD28, 0xFD28, 0x0000, 0xFD28, 0xFD28, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF,
	0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0xFD28, 0x0000, 0x0000, 0xFD28, 0xFD28, 0xFD28, 0x0000, 0xFD28, 0xFD28, 0xFD28, 0xFFFF, 0xFFFF,
	0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0x0000, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0x0000, 0x0000, 0x0000, 0x0000, 0xFFFF, 0xFFFF, 0x000E,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0xFD28, 0xFFFF, 0xFFFF, 0x000E, 0x000E,
	0x000E, 0x000E, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xF801, 0xFFFF, 0xFFFF, 0xFFFF, 0xF801, 0xFFFF, 0xFFFF, 0x000E, 0x000E, 0x000E,
	0x000E, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xF801, 0xFFFF, 0xFFFF, 0xFFFF, 0xF801, 0xF801, 0x000E, 0xC300, 0xC300,
	0xFD28, 0xFD28, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0x000E, 0xC300, 0xC300,
	0xFD28, 0xFD28, 0xFD28, 0xFD28, 0xF801, 0xF801, 0xFFFF, 0xF801, 0xF801, 0xFD28, 0xF801, 0xF801, 0xFD28, 0xF801, 0xC300, 0xC300, 0xC300,
	0x000E, 0xFD28, 0xFD28, 0xC300, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xC300, 0xC300, 0xC300,
	0x000E, 0x000E, 0xC300, 0xC300, 0xC300, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xC300, 0xC300, 0xC300,
	0x000E, 0xC300, 0xC300, 0xC300, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x000E, 0xC300, 0xC300, 0x000E, 0xF801, 0xF801, 0xF801, 0xF801, 0xF801, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
}

var cloudSmallPix = []uint16{
	0x000E, 0x0000, 0x0000, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0000, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0000, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x000E, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E,
	0xFFFF, 0x3DFF, 0xFFFF, 0xFFFF, 0x3DFF, 0xFFFF, 0xFFFF, 0x0000, 0xFFFF, 0x0000, 0x000E, 0x000E, 0x000E,
	0x3DFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x000E, 0x000E,
	0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x000E,
	0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x000E,
	0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x000E, 0x000E,
	0xFFFF, 0xFFFF, 0xFFFF, 0x3DFF, 0x3DFF, 0xFFFF, 0x3DFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x000E,
	0x3DFF, 0x3DFF, 0x3DFF, 0xFFFF, 0xFFFF, 0x3DFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x000E, 0x000E,
	0xFFFF, 0xFFFF, 0x0000, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x0000, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0000, 0x0000, 0x000E, 0x0000, 0x0000, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
}

var cloudWidePix = []uint16{
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0x0000, 0x0000, 0x000E, 0x000E, 0x000E,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0x0000, 0x000E,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0xFFFF, 0x3DFF, 0xFFFF, 0xFFFF, 0x3DFF, 0xFFFF, 0xFFFF,
	0x000E, 0x000E, 0x000E, 0x0000, 0x0000, 0xFFFF, 0x3DFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF,
	0x000E, 0x000E, 0x0000, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF,
	0x000E, 0x0000, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF,
	0x000E, 0xFFFF, 0xFFFF, 0xFFFF, 0x3DFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF,
	0x000E, 0x000E, 0x0000, 0xFFFF, 0xFFFF, 0x3DFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x3DFF, 0x3DFF, 0xFFFF, 0x3DFF,
	0x000E, 0x000E, 0x000E, 0x0000, 0xFFFF, 0xFFFF, 0x3DFF, 0x3DFF, 0x3DFF, 0xFFFF, 0xFFFF, 0x3DFF, 0xFFFF,
	0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0x0000, 0xFFFF, 0xFFFF, 0x0000, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0x0000, 0x000E, 0x0000, 0x0000, 0x0000, 0x000E,
}

var bushPix = []uint16{
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0x0000, 0x000E, 0x000E,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0xBFE3, 0xBFE3, 0x0000, 0x000E, 0x0000, 0x000E, 0x000E, 0x000E, 0x0000, 0xBFE3, 0xBFE3, 0x0000, 0x000E,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0x0000, 0xBFE3, 0x0000, 0x000E, 0x0000, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0x0000,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0xBFE3, 0xBFE3, 0xBFE3, 0x0560, 0xBFE3, 0xBFE3, 0x0000, 0x000E, 0x0000, 0xBFE3, 0xBFE3, 0xBFE3, 0x0560, 0xBFE3,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x0000, 0xBFE3, 0x0560, 0x0560, 0xBFE3, 0xBFE3, 0x0560, 0xBFE3, 0xBFE3, 0x0000, 0xBFE3, 0x0560, 0x0560, 0xBFE3, 0xBFE3, 0x0560,
	0x000E, 0x000E, 0x000E, 0x0000, 0x0000, 0xBFE3, 0x0560, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0x0560, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3,
	0x000E, 0x000E, 0x0000, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3,
	0x000E, 0x000E, 0x0000, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3,
	0x000E, 0x0000, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0xBFE3, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
}

// groundPix is the one brick of the ground strip (8x8).
var groundPix = []uint16{
	0xE2C2, 0xF6B6, 0xF6B6, 0xF6B6, 0x0000, 0xE2C2, 0xF6B6, 0xE2C2,
	0xF6B6, 0xE2C2, 0xE2C2, 0xE2C2, 0x0000, 0xF6B6, 0xE2C2, 0x0000,
	0xF6B6, 0xE2C2, 0xE2C2, 0xE2C2, 0x0000, 0xE2C2, 0x0000, 0xE2C2,
	0x0000, 0xE2C2, 0xE2C2, 0xE2C2, 0x0000, 0xF6B6, 0xF6B6, 0x0000,
	0xF6B6, 0x0000, 0x0000, 0xE2C2, 0x0000, 0xF6B6, 0xE2C2, 0x0000,
	0xF6B6, 0xF6B6, 0xF6B6, 0x0000, 0xF6B6, 0xE2C2, 0xE2C2, 0x0000,
	0xF6B6, 0xE2C2, 0xE2C2, 0xF6B6, 0xE2C2, 0xE2C2, 0xE2C2, 0x0000,
	0xE2C2, 0x0000, 0x0000, 0xF6B6, 0x0000, 0x0000, 0x0000, 0xE2C2,
}

var hillPix = []uint16{
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0000, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0000, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0000, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0000, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0000, 0x0560, 0x0000, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0000, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x0560, 0x0000, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000, 0x000E,
	0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0560, 0x0000,
}

// statusGlyphs holds the 16x15 caption glyphs, one uint16 per row with the
// most significant bit on the left.
var statusGlyphs = map[rune]Glyph{
	0x6B63: { // 正
		0x7FF8, 0x0100, 0x0100, 0x0100, 0x0100,
		0x1110, 0x11F8, 0x1100, 0x1100, 0x1100,
		0x1100, 0x1100, 0x1104, 0xFFFE, 0x0000,
	},
	0x5728: { // 在
		0x0200, 0x0204, 0xFFFE, 0x0400, 0x0410,
		0x0810, 0x0814, 0x13F8, 0x3010, 0x5010,
		0x9010, 0x1010, 0x1044, 0x17FE, 0x1000,
	},
	0x5907: { // 备
		0x07F0, 0x0820, 0x1440, 0x2380, 0x0280,
		0x0C60, 0x303E, 0xDFF4, 0x1110, 0x1110,
		0x1FF0, 0x1110, 0x1110, 0x1FF0, 0x1010,
	},
	0x4EFD: { // 份
		0x0920, 0x0920, 0x1110, 0x1210, 0x320E,
		0x5404, 0x9BF0, 0x1110, 0x1110, 0x1110,
		0x1110, 0x1210, 0x1210, 0x14A0, 0x1020,
	},
	0x4E0A: { // 上
		0x0100, 0x0100, 0x0100, 0x0110, 0x01FC,
		0x0100, 0x0100, 0x0100, 0x0100, 0x0100,
		0x0100, 0x0100, 0x0104, 0xFFFE, 0x0000,
	},
	0x4F20: { // 传
		0x0840, 0x0848, 0x17FC, 0x1040, 0x3044,
		0x5FFE, 0x9080, 0x1100, 0x13FC, 0x1008,
		0x1110, 0x10A0, 0x1040, 0x1060, 0x1020,
	},
	0x6210: { // 成
		0x00A0, 0x0090, 0x3FFC, 0x2080, 0x2080,
		0x2084, 0x3E44, 0x2248, 0x2248, 0x2230,
		0x2A20, 0x2462, 0x4092, 0x810A, 0x000E,
	},
	0x529F: { // 功
		0x0080, 0x0880, 0xFC80, 0x1084, 0x17FE,
		0x1084, 0x1084, 0x1084, 0x1084, 0x1D04,
		0xF104, 0x4104, 0x0244, 0x0428, 0x0810,
	},
	0x5931: { // 失
		0x1100, 0x1100, 0x1110, 0x1FF8, 0x2100,
		0x4100, 0x0104, 0xFFFE, 0x0100, 0x0280,
		0x0280, 0x0440, 0x0830, 0x100E, 0x6004,
	},
	0x8D25: { // 败
		0x7E40, 0x4444, 0x547E, 0x5488, 0x5508,
		0x5448, 0x5448, 0x5448, 0x5450, 0x5450,
		0x1020, 0x2850, 0x248E, 0x4504, 0x8200,
	},
}
