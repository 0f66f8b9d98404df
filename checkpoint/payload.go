package checkpoint

// PayloadKind tells popups how to lay out a checkpoint's content.
type PayloadKind string

const (
	// PayloadSingle has at most one image.
	PayloadSingle PayloadKind = "single"
	// PayloadGallery has two or more images shown as a carousel.
	PayloadGallery PayloadKind = "gallery"
)

const defaultTag = "Memory"

// Image is one photo of a checkpoint. Tag overrides the payload tag while
// this image is shown.
type Image struct {
	Src string
	Tag string
}

// Payload is the display content of a checkpoint. The core never reads it.
type Payload struct {
	Title    string
	Date     string
	Tag      string
	Text     string
	Images   []Image
	WideText bool
}

// Kind derives the layout from the number of images.
func (p Payload) Kind() PayloadKind {
	if len(p.Images) > 1 {
		return PayloadGallery
	}
	return PayloadSingle
}

// TagFor returns the tag shown alongside image i.
func (p Payload) TagFor(i int) string {
	if i >= 0 && i < len(p.Images) && p.Images[i].Tag != "" {
		return p.Images[i].Tag
	}
	if p.Tag != "" {
		return p.Tag
	}
	return defaultTag
}

// DisplayTitle falls back to a generic title.
func (p Payload) DisplayTitle() string {
	if p.Title == "" {
		return "Checkpoint"
	}
	return p.Title
}
