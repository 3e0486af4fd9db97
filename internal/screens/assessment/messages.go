package assessment

import "github.com/abhisek/careerfit/internal/store"

// savedMsg is sent when the completed answers have been persisted. owner
// is the screen that started the save.
type savedMsg struct {
	owner  *AssessmentScreen
	Record *store.Record
	Err    error
}
