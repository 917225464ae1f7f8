package jobs

import "fmt"

type State string

const (
	Pending State = "PENDING"
	Running State = "RUNNING"
	Done    State = "DONE"
	// Unknown covers anything the warehouse reports that is not one of the above.
	Unknown State = "UNKNOWN"
)

// Handle is a reference to an asynchronously running query.
type Handle struct {
	ID       string `json:"id"`
	Location string `json:"location"`
	Table    string `json:"table"`
}

func (h Handle) String() string {
	return fmt.Sprintf("%s (table: %s, location: %s)", h.ID, h.Table, h.Location)
}

type Status struct {
	State State
	// Err is only set when the job finished unsuccessfully.
	Err error
}

func (s Status) Failed() bool {
	return s.State == Done && s.Err != nil
}

// Tally counts job states across one polling round.
type Tally struct {
	Total   int
	Pending int
	Running int
	Done    int
	Failed  int
}

func (t *Tally) Add(status Status) {
	t.Total++
	switch status.State {
	case Pending:
		t.Pending++
	case Running:
		t.Running++
	case Done:
		t.Done++
		if status.Failed() {
			t.Failed++
		}
	}
}

func (t Tally) AllDone() bool {
	return t.Done == t.Total
}

func (t Tally) String() string {
	return fmt.Sprintf("|%d,%d,%d,%d|#jobs,#pending,#running,#done", t.Total, t.Pending, t.Running, t.Done)
}
