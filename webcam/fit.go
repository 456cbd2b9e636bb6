package webcam

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Fit turns a camera frame into a full screen background of
// width x height: the centre of the frame is cropped to the target
// aspect ratio, optionally mirrored so it behaves like a mirror to
// the player, and resized.
func Fit(frame image.Image, width, height int, mirror bool) *image.NRGBA {
	b := frame.Bounds()
	fw, fh := b.Dx(), b.Dy()
	if fw == 0 || fh == 0 || width < 1 || height < 1 {
		return image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	}

	cropW, cropH := fw, fh
	if fw*height > fh*width {
		cropW = fh * width / height
	} else {
		cropH = fw * height / width
	}
	out := imaging.CropCenter(frame, max(cropW, 1), max(cropH, 1))
	if mirror {
		out = imaging.FlipH(out)
	}
	return imaging.Resize(out, width, height, imaging.Linear)
}

// DrawRect outlines r on img with the given line thickness, growing
// it outwards by padding first. The outline is clipped to the image.
func DrawRect(img draw.Image, r image.Rectangle, padding, thickness int, clr color.Color) {
	bounds := img.Bounds()
	r = image.Rect(r.Min.X-padding, r.Min.Y-padding, r.Max.X+padding, r.Max.Y+padding).Intersect(bounds)
	if r.Empty() || thickness < 1 {
		return
	}
	src := image.NewUniform(clr)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness),
		image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y),
		image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, edge := range edges {
		draw.Draw(img, edge.Intersect(r), src, image.Point{}, draw.Src)
	}
}
