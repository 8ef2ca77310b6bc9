package view

// DefaultImageURL is rendered whenever an entity has no image or its
// image fails to load.
const DefaultImageURL = "https://res.cloudinary.com/duqjf1fuh/image/upload/v1686761853/imagen_default_byg0nb.jpg"

// ImageOrDefault returns the entity image when present and non-empty,
// otherwise the placeholder.
func ImageOrDefault(image *string) string {
	if image == nil || *image == "" {
		return DefaultImageURL
	}
	return *image
}
