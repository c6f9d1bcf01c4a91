package domain

// Surface is a rendering target with its own visibility rules.
type Surface string

const (
	SurfacePublic Surface = "public"
	SurfacePDF    Surface = "pdf"
)
