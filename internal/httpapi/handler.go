// Package httpapi exposes the simulation service as JSON over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"

	"page-replacement-simulator/internal/core/ports"
	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"
	"page-replacement-simulator/internal/refstring"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

type stepJSON struct {
	Page   int   `json:"page"`
	Fault  bool  `json:"fault"`
	Victim *int  `json:"victim,omitempty"`
	Frames []int `json:"frames"`
}

type simulationJSON struct {
	Policy   policy.Kind `json:"policy"`
	Capacity int         `json:"capacity"`
	Faults   int         `json:"faults"`
	Hits     int         `json:"hits"`
	Steps    []stepJSON  `json:"steps"`
}

type comparisonJSON struct {
	Capacity int                 `json:"capacity"`
	Faults   map[policy.Kind]int `json:"faults"`
	Best     policy.Kind         `json:"best"`
}

type policyJSON struct {
	Name        policy.Kind `json:"name"`
	Description string      `json:"description"`
}

type errorJSON struct {
	Error string `json:"error"`
}

type handler struct {
	svc ports.SimulationService
}

// NewHandler routes /simulate, /compare, /policies and /metrics.
func NewHandler(svc ports.SimulationService) http.Handler {
	h := &handler{svc: svc}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /simulate", h.simulate)
	mux.HandleFunc("GET /compare", h.compare)
	mux.HandleFunc("GET /policies", h.policies)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// simulate serves /simulate?policy=LRU&frames=3&refs=1,2,3
func (h *handler) simulate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	kind, err := policy.ParseKind(q.Get("policy"))
	if err != nil {
		writeError(w, engine.ErrUnknownPolicy("http simulate", err))
		return
	}
	refs, capacity, err := parseInput(q.Get("refs"), q.Get("frames"))
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := h.svc.Simulate(r.Context(), kind, refs, capacity)
	if err != nil {
		writeError(w, err)
		return
	}

	out := simulationJSON{
		Policy:   res.Policy,
		Capacity: res.Capacity,
		Faults:   res.Faults,
		Hits:     res.Hits(),
		Steps:    make([]stepJSON, len(res.Steps)),
	}
	for i, s := range res.Steps {
		out.Steps[i] = stepJSON{Page: s.Page, Fault: s.Fault, Frames: s.Frames}
		if s.Evicted {
			victim := s.Victim
			out.Steps[i].Victim = &victim
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// compare serves /compare?frames=3&refs=...&policy=FIFO&policy=LRU
func (h *handler) compare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var kinds []policy.Kind
	for _, name := range q["policy"] {
		kind, err := policy.ParseKind(name)
		if err != nil {
			writeError(w, engine.ErrUnknownPolicy("http compare", err))
			return
		}
		kinds = append(kinds, kind)
	}
	refs, capacity, err := parseInput(q.Get("refs"), q.Get("frames"))
	if err != nil {
		writeError(w, err)
		return
	}

	cmp, err := h.svc.Compare(r.Context(), refs, capacity, kinds...)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comparisonJSON{
		Capacity: cmp.Capacity,
		Faults:   cmp.Faults(),
		Best:     cmp.Best(),
	})
}

func (h *handler) policies(w http.ResponseWriter, _ *http.Request) {
	kinds := policy.AllKinds()
	out := make([]policyJSON, len(kinds))
	for i, k := range kinds {
		out[i] = policyJSON{Name: k, Description: policy.Describe(k)}
	}
	writeJSON(w, http.StatusOK, out)
}

func parseInput(refsParam, framesParam string) ([]int, int, error) {
	refs, err := refstring.ParseReferences(refsParam)
	if err != nil {
		return nil, 0, err
	}
	capacity, err := refstring.ParseCapacity(framesParam)
	if err != nil {
		return nil, 0, err
	}
	return refs, capacity, nil
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if engine.CodeOf(err) != engine.ErrCodeUnknown {
		code = http.StatusBadRequest
	} else {
		log.WithError(err).Error("HTTP request failed.")
	}
	writeJSON(w, code, errorJSON{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("Failed to write response.")
	}
}
