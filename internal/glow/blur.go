package glow

import (
	"image"
	"math"
)

// BoxBlur approximates a gaussian blur with standard deviation sigma using
// three successive box blurs, in place. img must be premultiplied.
func BoxBlur(img *image.RGBA, sigma float64) {
	if sigma < 0.5 || img.Rect.Empty() {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	tmp := make([]uint8, len(img.Pix))
	for _, size := range boxSizes(sigma, 3) {
		r := (size - 1) / 2
		boxPass(img.Pix, tmp, w, h, 4, img.Stride, r)
		boxPass(tmp, img.Pix, h, w, img.Stride, 4, r)
	}
}

// boxSizes returns n odd box widths whose sequential application matches a
// gaussian of the given sigma (Kovesi's construction).
func boxSizes(sigma float64, n int) []int {
	wIdeal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2
	mIdeal := (12*sigma*sigma - float64(n*wl*wl) - float64(4*n*wl) - float64(3*n)) / float64(-4*wl-4)
	m := int(math.Round(mIdeal))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// boxPass blurs lines of length n (step apart) across count lines (lineStep
// apart), reading src and writing dst. Edges clamp.
func boxPass(src, dst []uint8, n, count, step, lineStep, r int) {
	if r < 1 {
		copy(dst, src)
		return
	}
	div := float64(2*r + 1)
	for line := 0; line < count; line++ {
		base := line * lineStep
		for ch := 0; ch < 4; ch++ {
			at := func(i int) int {
				i = min(max(i, 0), n-1)
				return int(src[base+i*step+ch])
			}
			sum := 0
			for i := -r; i <= r; i++ {
				sum += at(i)
			}
			for i := 0; i < n; i++ {
				dst[base+i*step+ch] = uint8(math.Round(float64(sum) / div))
				sum += at(i+r+1) - at(i-r)
			}
		}
	}
}
