package raster

// Point rasterizes a square point sprite of the given size (in pixels)
// centered at (cx, cy), clipped to clip, calling emit for each covered
// pixel.
func Point(cx, cy, size float32, clip AABB, emit func(x, y int)) {
	if size <= 0 {
		size = 1
	}
	half := size / 2
	box := AABB{
		MinX: int(floor(cx - half + 0.5)),
		MinY: int(floor(cy - half + 0.5)),
		MaxX: int(floor(cx + half + 0.5)),
		MaxY: int(floor(cy + half + 0.5)),
	}.Intersect(clip)

	for y := box.MinY; y < box.MaxY; y++ {
		for x := box.MinX; x < box.MaxX; x++ {
			emit(x, y)
		}
	}
}
