package grpc

import (
	"page-replacement-simulator/internal/engine"
)

// SimulateRequest asks for one policy run.
type SimulateRequest struct {
	Policy string `json:"policy"`
	Frames int    `json:"frames"`
	Refs   []int  `json:"refs"`
}

// StepMessage is one reference of a trace.
type StepMessage struct {
	Index  int   `json:"index"`
	Page   int   `json:"page"`
	Fault  bool  `json:"fault"`
	Victim *int  `json:"victim,omitempty"`
	Frames []int `json:"frames"`
}

type SimulateResponse struct {
	Policy string         `json:"policy"`
	Frames int            `json:"frames"`
	Faults int            `json:"faults"`
	Hits   int            `json:"hits"`
	Steps  []*StepMessage `json:"steps"`
}

// CompareRequest runs several policies over the same input.
// An empty Policies list means FIFO, LRU and OPTIMAL.
type CompareRequest struct {
	Frames   int      `json:"frames"`
	Refs     []int    `json:"refs"`
	Policies []string `json:"policies,omitempty"`
}

type CompareResponse struct {
	Frames int            `json:"frames"`
	Faults map[string]int `json:"faults"`
	Order  []string       `json:"order"`
	Best   string         `json:"best"`
}

func stepMessage(i int, s engine.Step[int]) *StepMessage {
	msg := &StepMessage{
		Index:  i + 1,
		Page:   s.Page,
		Fault:  s.Fault,
		Frames: s.Frames,
	}
	if s.Evicted {
		victim := s.Victim
		msg.Victim = &victim
	}
	return msg
}

func simulateResponse(res *engine.Result[int]) *SimulateResponse {
	resp := &SimulateResponse{
		Policy: string(res.Policy),
		Frames: res.Capacity,
		Faults: res.Faults,
		Hits:   res.Hits(),
		Steps:  make([]*StepMessage, len(res.Steps)),
	}
	for i, s := range res.Steps {
		resp.Steps[i] = stepMessage(i, s)
	}
	return resp
}
