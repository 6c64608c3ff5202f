package config

// UpsertResult reports what a modifying operation did to the document.
type UpsertResult string

const (
	Created UpsertResult = "created"
	Updated UpsertResult = "updated"
	Deleted UpsertResult = "deleted"
	Noop    UpsertResult = "noop"
)

func (r UpsertResult) String() string {
	return string(r)
}
