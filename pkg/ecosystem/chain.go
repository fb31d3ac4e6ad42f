package ecosystem

import (
	"fmt"
	"time"

	"github.com/ajitpratap0/patternlab/pkg/metrics"
)

// RequestType classifies a Request.
type RequestType string

const (
	RequestEmergency   RequestType = "EMERGENCY"
	RequestMedical     RequestType = "MEDICAL"
	RequestFeeding     RequestType = "FEEDING"
	RequestMaintenance RequestType = "MAINTENANCE"
	RequestVisitor     RequestType = "VISITOR"
)

const (
	minPriority = 1
	maxPriority = 5
)

// Request is a piece of work for the handler chain. Priority runs from 1
// (lowest) to 5.
type Request struct {
	Type        RequestType
	Priority    int
	Description string
	Requester   string
	Timestamp   time.Time
}

func newRequest(t RequestType, priority int, description, requester string) Request {
	return Request{
		Type:        t,
		Priority:    min(maxPriority, max(minPriority, priority)),
		Description: description,
		Requester:   requester,
		Timestamp:   time.Now(),
	}
}

// EmergencyRequest builds a request at the highest priority.
func EmergencyRequest(description, requester string) Request {
	return newRequest(RequestEmergency, maxPriority, description, requester)
}

// MedicalRequest builds a medical request. A zero priority means 3.
func MedicalRequest(description, requester string, priority int) Request {
	if priority == 0 {
		priority = 3
	}
	return newRequest(RequestMedical, priority, description, requester)
}

// FeedingRequest builds a feeding request at priority 2.
func FeedingRequest(description, requester string) Request {
	return newRequest(RequestFeeding, 2, description, requester)
}

// MaintenanceRequest builds a maintenance request. A zero priority means 1.
func MaintenanceRequest(description, requester string, priority int) Request {
	if priority == 0 {
		priority = 1
	}
	return newRequest(RequestMaintenance, priority, description, requester)
}

// VisitorRequest builds a visitor request at the lowest priority.
func VisitorRequest(description, requester string) Request {
	return newRequest(RequestVisitor, minPriority, description, requester)
}

// Resolution is the outcome of running a request through a chain.
type Resolution struct {
	// Handler is the name of the handler that took the request, empty when
	// none did.
	Handler  string
	Response string
	Actions  []string
	// Passed names the handlers that forwarded the request, in order.
	Passed []string
}

// Handled reports whether some handler took the request.
func (r Resolution) Handled() bool { return r.Handler != "" }

// Handler is a link in a chain of responsibility.
type Handler interface {
	Name() string
	// SetNext links h after this handler and returns h so links can be chained.
	SetNext(h Handler) Handler
	Handle(r Request) Resolution
}

// RequestHandler takes the requests it accepts and forwards the rest.
type RequestHandler struct {
	name    string
	accepts func(Request) bool
	respond string
	actions []string
	next    Handler
}

// Name returns the handler name.
func (h *RequestHandler) Name() string { return h.name }

// SetNext links next after h.
func (h *RequestHandler) SetNext(next Handler) Handler {
	h.next = next
	return next
}

// Handle takes r if h accepts it, otherwise passes it along the chain.
func (h *RequestHandler) Handle(r Request) Resolution {
	res := h.handle(r)
	label := res.Handler
	if label == "" {
		label = "none"
	}
	metrics.RequestsHandled.WithLabelValues(label).Inc()
	return res
}

func (h *RequestHandler) handle(r Request) Resolution {
	if h.accepts(r) {
		return Resolution{
			Handler:  h.name,
			Response: fmt.Sprintf(h.respond, r.Description, r.Requester),
			Actions:  append([]string(nil), h.actions...),
		}
	}
	var res Resolution
	switch next := h.next.(type) {
	case nil:
		res = Resolution{Response: "No handler available for request: " + r.Description}
	case *RequestHandler:
		res = next.handle(r)
	default:
		res = next.Handle(r)
	}
	res.Passed = append([]string{h.name}, res.Passed...)
	return res
}

// NewEmergencyHandler takes emergencies and anything at priority 4 or above.
func NewEmergencyHandler() *RequestHandler {
	return &RequestHandler{
		name:    "EmergencyHandler",
		accepts: func(r Request) bool { return r.Type == RequestEmergency || r.Priority >= 4 },
		respond: `EMERGENCY HANDLER: Immediately addressing "%s" from %s`,
		actions: []string{"Alerting emergency services", "Dispatching emergency team", "Creating incident report"},
	}
}

// NewMedicalHandler takes medical requests at priority 2 or above.
func NewMedicalHandler() *RequestHandler {
	return &RequestHandler{
		name:    "MedicalHandler",
		accepts: func(r Request) bool { return r.Type == RequestMedical && r.Priority >= 2 },
		respond: `MEDICAL HANDLER: Treating "%s" for %s`,
		actions: []string{"Conducting medical examination", "Administering treatment", "Updating medical records"},
	}
}

// NewFeedingHandler takes feeding requests.
func NewFeedingHandler() *RequestHandler {
	return &RequestHandler{
		name:    "FeedingHandler",
		accepts: func(r Request) bool { return r.Type == RequestFeeding },
		respond: `FEEDING HANDLER: Handling "%s" for %s`,
		actions: []string{"Preparing appropriate food", "Checking dietary requirements", "Scheduling feeding time"},
	}
}

// NewMaintenanceHandler takes maintenance requests.
func NewMaintenanceHandler() *RequestHandler {
	return &RequestHandler{
		name:    "MaintenanceHandler",
		accepts: func(r Request) bool { return r.Type == RequestMaintenance },
		respond: `MAINTENANCE HANDLER: Processing "%s" from %s`,
		actions: []string{"Inspecting equipment/habitat", "Performing necessary repairs", "Updating maintenance log"},
	}
}

// NewVisitorHandler takes visitor requests at priority 2 or below.
func NewVisitorHandler() *RequestHandler {
	return &RequestHandler{
		name:    "VisitorHandler",
		accepts: func(r Request) bool { return r.Type == RequestVisitor && r.Priority <= 2 },
		respond: `VISITOR HANDLER: Assisting with "%s" for %s`,
		actions: []string{"Providing information", "Giving directions", "Connecting to appropriate staff"},
	}
}

// NewChain links handlers in the given order and returns the first. It
// returns nil when no handlers are given.
func NewChain(handlers ...Handler) Handler {
	if len(handlers) == 0 {
		return nil
	}
	for i := 0; i+1 < len(handlers); i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	return handlers[0]
}

// DefaultChain links the emergency, medical, feeding, maintenance and visitor
// handlers in that order.
func DefaultChain() Handler {
	return NewChain(
		NewEmergencyHandler(),
		NewMedicalHandler(),
		NewFeedingHandler(),
		NewMaintenanceHandler(),
		NewVisitorHandler(),
	)
}
