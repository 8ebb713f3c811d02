package models

// RunUpdateMessage is one JSON text frame received on the run push channel.
// Both payload members are optional; a frame may carry neither.
type RunUpdateMessage struct {
	Status  *string           `json:"status,omitempty"`
	Step    *string           `json:"step,omitempty"`
	Payload *RunUpdatePayload `json:"payload,omitempty"`
}

// RunUpdatePayload carries the refreshed entities of a [RunUpdateMessage].
type RunUpdatePayload struct {
	Run  *Run  `json:"run,omitempty"`
	Step *Step `json:"step,omitempty"`
}

// PayloadRun returns the run carried by the message, or nil.
func (m RunUpdateMessage) PayloadRun() *Run {
	if m.Payload == nil {
		return nil
	}
	return m.Payload.Run
}

// PayloadStep returns the step carried by the message, or nil.
func (m RunUpdateMessage) PayloadStep() *Step {
	if m.Payload == nil {
		return nil
	}
	return m.Payload.Step
}
