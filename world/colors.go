package world

import "image/color"

// Palette shared by the menus, the HUD and the webcam overlay.
var (
	White  = color.RGBA{255, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
	Green  = color.RGBA{0, 128, 0, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Yellow = color.RGBA{255, 255, 0, 255}

	GrassGreen   = color.RGBA{157, 227, 96, 255}
	GroundYellow = color.RGBA{228, 250, 145, 255}
	BirdRed      = color.RGBA{202, 63, 30, 255}

	GrassDarkGreen   = color.RGBA{134, 215, 68, 255}
	GroundDarkYellow = color.RGBA{211, 244, 98, 255}
	BirdDarkRed      = color.RGBA{178, 49, 28, 255}

	SkyBlue   = color.RGBA{135, 206, 235, 255}
	PipeGreen = color.RGBA{0, 100, 0, 255}
	Sand      = color.RGBA{222, 184, 135, 255}
)
