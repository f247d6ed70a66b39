package entity

// Category agrupa materiales del catálogo (Core materials, Hardware, etc.).
type Category struct {
	ID   int64
	Name string // único
}
