package block

// Image is a standalone image reference.
type Image struct {
	Alt string `json:"alt"`
	Src string `json:"src"`
}

// NewImage creates a new image node.
func NewImage(alt, src string) Image {
	return Image{Alt: alt, Src: src}
}

// Kind implements Node.
func (Image) Kind() Type { return TypeImage }

// HasSource returns true if the image points somewhere.
func (img Image) HasSource() bool {
	return img.Src != ""
}
