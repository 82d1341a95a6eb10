package csvimport

// ImportStatus is the explicit lifecycle of one import invocation.
// The presentation layer consumes this instead of a pile of boolean flags.
type ImportStatus string

const (
	StatusIdle      ImportStatus = "idle"
	StatusLoading   ImportStatus = "loading"
	StatusSaving    ImportStatus = "saving"
	StatusImporting ImportStatus = "importing"
	StatusCompleted ImportStatus = "completed"
	StatusFailed    ImportStatus = "failed"
)

// Terminal returns true for states an import cannot leave
func (s ImportStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
