package models

import "encoding/json"

// ApplicationStats holds per-status counts of a user's applications.
// Stats always contains every status of [Statuses].
type ApplicationStats struct {
	Stats map[Status]int
	Total int
}

// NewApplicationStats fills missing statuses with zero and sums the total over
// the closed status set. Unknown statuses in counts are ignored.
func NewApplicationStats(counts map[Status]int) ApplicationStats {
	stats := ApplicationStats{Stats: make(map[Status]int, len(Statuses))}
	for _, s := range Statuses {
		stats.Stats[s] = counts[s]
		stats.Total += counts[s]
	}
	return stats
}

type statsJSON struct {
	Stats struct {
		Applied   int `json:"applied"`
		Interview int `json:"interview"`
		Offered   int `json:"offered"`
		Rejected  int `json:"rejected"`
	} `json:"stats"`
	Total int `json:"total"`
}

func (s ApplicationStats) MarshalJSON() ([]byte, error) {
	var out statsJSON
	out.Stats.Applied = s.Stats[StatusApplied]
	out.Stats.Interview = s.Stats[StatusInterview]
	out.Stats.Offered = s.Stats[StatusOffered]
	out.Stats.Rejected = s.Stats[StatusRejected]
	out.Total = s.Total
	return json.Marshal(out)
}

func (s *ApplicationStats) UnmarshalJSON(b []byte) error {
	var in statsJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	s.Stats = map[Status]int{
		StatusApplied:   in.Stats.Applied,
		StatusInterview: in.Stats.Interview,
		StatusOffered:   in.Stats.Offered,
		StatusRejected:  in.Stats.Rejected,
	}
	s.Total = in.Total
	return nil
}
