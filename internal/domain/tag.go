package domain

// Tags are identified by their string value, which doubles as the display
// name. The active tag set is an ordered list of unique strings and is never
// empty: deleting the last remaining tag substitutes DefaultTag.

// DefaultTag is the tag substituted when the last tag would otherwise be
// deleted, and the fallback active tag.
const DefaultTag = "Me"

// DefaultTags is the tag set a fresh install starts with.
func DefaultTags() []string {
	return []string{"Me", "Couple"}
}
