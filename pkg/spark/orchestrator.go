// Package spark is the per-turn orchestrator: preflight, safety
// decision, prompt assembly, model streaming, persistence, and
// analytics for one visitor message.
package spark

import (
	"context"
	"log/slog"
	"strings"

	"github.com/trykin/spark/pkg/config"
	"github.com/trykin/spark/pkg/format"
	"github.com/trykin/spark/pkg/llm"
	"github.com/trykin/spark/pkg/models"
	"github.com/trykin/spark/pkg/preflight"
	"github.com/trykin/spark/pkg/settling"
)

// Event is one server-sent event emitted during a turn.
type Event struct {
	Name string
	Data map[string]interface{}
}

// Event names on the chat stream.
const (
	EventSession  = "session"
	EventToken    = "token"
	EventWindDown = "wind_down"
	EventDone     = "done"
	EventError    = "error"
)

// SessionStore is the orchestrator's view of conversation persistence.
// Satisfied by *services.SessionService.
type SessionStore interface {
	BoundarySignals(ctx context.Context, conversationID string) int
	IncrementBoundarySignals(ctx context.Context, conversationID string) error
	History(ctx context.Context, conversationID string, turns int) ([]models.ChatMessage, error)
	Append(ctx context.Context, conversationID, role, content string) error
	IncrementTurn(ctx context.Context, conversationID string) (int, error)
	End(ctx context.Context, conversationID, state, outcome string) error
}

// Preflighter runs the pre-model safety and retrieval stage.
// Satisfied by *preflight.Runner.
type Preflighter interface {
	Run(ctx context.Context, message, clientID string, history []models.ChatMessage, priorSignals int) preflight.Result
}

// Streamer produces the chat completion stream. Satisfied by
// *llm.Client.
type Streamer interface {
	Stream(ctx context.Context, req llm.Request) (<-chan string, <-chan error)
}

// EventRecorder persists analytics events. Satisfied by
// *services.EventService.
type EventRecorder interface {
	Record(ctx context.Context, clientID, conversationID, eventType string, metadata map[string]interface{}) error
}

// TaskSubmitter accepts fire-and-forget work. Satisfied by
// *tasks.Pool.
type TaskSubmitter interface {
	Submit(name string, task func(ctx context.Context)) bool
}

// Orchestrator drives the turn pipeline.
type Orchestrator struct {
	cfg       *config.Settings
	sessions  SessionStore
	preflight Preflighter
	llm       Streamer
	events    EventRecorder
	prompts   *settling.Builder
	pool      TaskSubmitter
	logger    *slog.Logger
}

// NewOrchestrator wires the turn pipeline.
func NewOrchestrator(
	cfg *config.Settings,
	sessions SessionStore,
	pf Preflighter,
	streamer Streamer,
	events EventRecorder,
	prompts *settling.Builder,
	pool TaskSubmitter,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		sessions:  sessions,
		preflight: pf,
		llm:       streamer,
		events:    events,
		prompts:   prompts,
		pool:      pool,
		logger:    logger,
	}
}

// TurnInput is one visitor message plus the tenant and session context
// resolved by the HTTP edge.
type TurnInput struct {
	Message           string
	ClientID          string
	ConversationID    string
	SettlingConfig    models.SettlingConfig
	MaxTurns          int
	ClientOrientation string
}

// defaultFarewell closes out a conversation that hit its turn limit
// when the tenant has no lead capture prompt configured.
const defaultFarewell = "Thanks for chatting! If you'd like to continue the conversation, " +
	"leave your email and we'll be in touch."

// ProcessMessage runs the full turn pipeline, emitting events as the
// turn progresses. The returned channel is closed when the turn ends.
// Cancelling ctx (visitor disconnect) stops the pipeline.
func (o *Orchestrator) ProcessMessage(ctx context.Context, in TurnInput) <-chan Event {
	out := make(chan Event, 16)
	go func() {
		defer close(out)
		o.processMessage(ctx, in, out)
	}()
	return out
}

// emit delivers one event, giving up when the visitor is gone.
func emit(ctx context.Context, out chan<- Event, e Event) bool {
	select {
	case out <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

func (o *Orchestrator) processMessage(ctx context.Context, in TurnInput, out chan<- Event) {
	// Prior signals and history feed both preflight and the model call.
	priorSignals := o.sessions.BoundarySignals(ctx, in.ConversationID)

	history, err := o.sessions.History(ctx, in.ConversationID, o.cfg.ContextTurns)
	if err != nil {
		o.logger.Warn("History fetch failed, proceeding without context",
			"conversation_id", in.ConversationID, "error", err)
		history = nil
	}

	pf := o.preflight.Run(ctx, in.Message, in.ClientID, history, priorSignals)
	if ctx.Err() != nil {
		return
	}

	if o.cfg.PreflightMode == config.PreflightModeGate {
		if pf.BoundarySignal != "" || pf.Terminate {
			o.gateDeflect(ctx, in, pf, out)
			return
		}
	} else {
		if pf.Terminate {
			o.terminate(ctx, in, out)
			return
		}
		if pf.BoundarySignal != "" {
			convID := in.ConversationID
			o.pool.Submit("boundary_increment", func(taskCtx context.Context) {
				if err := o.sessions.IncrementBoundarySignals(taskCtx, convID); err != nil {
					o.logger.Warn("Boundary count increment failed", "conversation_id", convID, "error", err)
				}
			})
		}
	}

	newTurn, err := o.sessions.IncrementTurn(ctx, in.ConversationID)
	if err != nil {
		o.logger.Error("Turn increment failed", "conversation_id", in.ConversationID, "error", err)
		emit(ctx, out, Event{EventError, map[string]interface{}{"message": "Something went wrong. Please try again."}})
		return
	}

	windDown := o.shouldWindDown(newTurn, in.MaxTurns)
	turnsRemaining := in.MaxTurns - newTurn

	if turnsRemaining <= 0 {
		o.farewell(ctx, in, out)
		return
	}

	systemPrompt := o.prompts.Build(settling.Input{
		Config:            in.SettlingConfig,
		Chunks:            pf.RetrievedChunks,
		TurnCount:         newTurn,
		MaxTurns:          in.MaxTurns,
		WindDown:          windDown,
		ConversationState: pf.ConversationState,
		BoundarySignal:    pf.BoundarySignal,
		OrientationText:   in.ClientOrientation,
	})

	messages := make([]models.ChatMessage, 0, len(history)+2)
	messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: systemPrompt})
	for _, m := range history {
		// Some providers reject empty messages.
		if m.Content != "" {
			messages = append(messages, m)
		}
	}
	messages = append(messages, models.ChatMessage{Role: models.RoleUser, Content: in.Message})

	if err := o.sessions.Append(ctx, in.ConversationID, models.RoleUser, in.Message); err != nil {
		o.logger.Error("Failed to store user message", "conversation_id", in.ConversationID, "error", err)
		emit(ctx, out, Event{EventError, map[string]interface{}{"message": "Something went wrong. Please try again."}})
		return
	}

	chunks, errs := o.llm.Stream(ctx, llm.Request{
		Messages:    messages,
		Temperature: 1.0,
		MaxTokens:   1024,
	})

	var full strings.Builder
	for chunk := range chunks {
		full.WriteString(chunk)
		if !emit(ctx, out, Event{EventToken, map[string]interface{}{"text": chunk}}) {
			return
		}
	}
	if err := <-errs; err != nil {
		o.logger.Error("Chat stream failed", "conversation_id", in.ConversationID, "error", err)
		emit(ctx, out, Event{EventError, map[string]interface{}{"message": "I hit a snag. Please try again."}})
		return
	}

	normalized := format.Normalize(full.String())
	if err := o.sessions.Append(ctx, in.ConversationID, models.RoleAssistant, normalized); err != nil {
		o.logger.Error("Failed to store assistant message", "conversation_id", in.ConversationID, "error", err)
	}

	if windDown {
		if !emit(ctx, out, Event{EventWindDown, map[string]interface{}{"turns_remaining": turnsRemaining}}) {
			return
		}
	}

	eventType := "message"
	if newTurn == 1 {
		eventType = "first_message"
	}
	var meta map[string]interface{}
	if pf.BoundarySignal != "" {
		meta = map[string]interface{}{"boundary_signal": pf.BoundarySignal}
	}
	o.recordEvent(in, eventType, meta)
	if !pf.InScope {
		o.recordEvent(in, "out_of_scope", nil)
	}

	emit(ctx, out, Event{EventDone, map[string]interface{}{"turns_remaining": turnsRemaining}})
}

// terminate handles a terminate verdict in signals mode: store the
// message, end the conversation, no model call.
func (o *Orchestrator) terminate(ctx context.Context, in TurnInput, out chan<- Event) {
	if err := o.sessions.Append(ctx, in.ConversationID, models.RoleUser, in.Message); err != nil {
		o.logger.Error("Failed to store user message on terminate", "conversation_id", in.ConversationID, "error", err)
	}
	if err := o.sessions.End(ctx, in.ConversationID, "terminated", "terminated"); err != nil {
		o.logger.Error("Failed to end terminated session", "conversation_id", in.ConversationID, "error", err)
	}
	emit(ctx, out, Event{EventDone, map[string]interface{}{"terminated": true}})
}

// farewell closes out a conversation at its turn limit with a canned
// goodbye, streamed word by word so the widget renders it like a
// normal reply.
func (o *Orchestrator) farewell(ctx context.Context, in TurnInput, out chan<- Event) {
	farewell := in.SettlingConfig.LeadCapturePrompt
	if farewell == "" {
		farewell = defaultFarewell
	}

	if err := o.sessions.Append(ctx, in.ConversationID, models.RoleUser, in.Message); err != nil {
		o.logger.Error("Failed to store user message at turn limit", "conversation_id", in.ConversationID, "error", err)
	}
	if err := o.sessions.Append(ctx, in.ConversationID, models.RoleAssistant, farewell); err != nil {
		o.logger.Error("Failed to store farewell", "conversation_id", in.ConversationID, "error", err)
	}

	for _, word := range strings.Split(farewell, " ") {
		if !emit(ctx, out, Event{EventToken, map[string]interface{}{"text": word + " "}}) {
			return
		}
	}

	if err := o.sessions.End(ctx, in.ConversationID, "completed", "completed"); err != nil {
		o.logger.Error("Failed to end completed session", "conversation_id", in.ConversationID, "error", err)
	}
	emit(ctx, out, Event{EventDone, map[string]interface{}{"turns_remaining": 0}})
}

// gateDeflect is the legacy gate mode: instead of letting the signal
// shape the prompt, answer with a canned deflection and skip the model
// entirely. Kept for rollback via SPARK_PREFLIGHT_MODE=gate.
func (o *Orchestrator) gateDeflect(ctx context.Context, in TurnInput, pf preflight.Result, out chan<- Event) {
	tier := "subtle"
	switch {
	case pf.Terminate:
		tier = "terminate"
	case pf.BoundarySignal == preflight.SignalIdentityBreaking,
		pf.BoundarySignal == preflight.SignalExtractionFraming,
		pf.BoundarySignal == preflight.SignalAdversarialStress:
		tier = "firm"
	}

	deflection := deflectionResponse(tier, in.SettlingConfig)

	if err := o.sessions.Append(ctx, in.ConversationID, models.RoleUser, in.Message); err != nil {
		o.logger.Error("Failed to store user message in gate mode", "conversation_id", in.ConversationID, "error", err)
	}
	if err := o.sessions.Append(ctx, in.ConversationID, models.RoleAssistant, deflection); err != nil {
		o.logger.Error("Failed to store deflection", "conversation_id", in.ConversationID, "error", err)
	}

	for _, word := range strings.Split(deflection, " ") {
		if !emit(ctx, out, Event{EventToken, map[string]interface{}{"text": word + " "}}) {
			return
		}
	}

	meta := map[string]interface{}{"tier": tier}
	if pf.BoundarySignal != "" {
		meta["boundary_signal"] = pf.BoundarySignal
	}
	o.recordEvent(in, "jailbreak_blocked", meta)

	if pf.Terminate {
		if err := o.sessions.End(ctx, in.ConversationID, "terminated", "terminated"); err != nil {
			o.logger.Error("Failed to end terminated session", "conversation_id", in.ConversationID, "error", err)
		}
	}
	emit(ctx, out, Event{EventDone, map[string]interface{}{}})
}

// deflectionResponse picks the tenant's configured deflection for a
// tier, falling back to the stock lines.
func deflectionResponse(tier string, cfg models.SettlingConfig) string {
	if resp, ok := cfg.JailbreakResponses[tier]; ok {
		return resp
	}
	defaults := map[string]string{
		"subtle": "I appreciate the creativity, but I'm here to help with questions " +
			"about what we do. What can I actually help you with?",
		"firm": "I'm not able to do that. I'm here to help with genuine questions. " +
			"Is there something real I can assist you with?",
		"terminate": "I'm going to wrap up this conversation. If you have genuine " +
			"questions in the future, feel free to start a new chat.",
	}
	if resp, ok := defaults[tier]; ok {
		return resp
	}
	return defaults["subtle"]
}

// shouldWindDown is true when the conversation is old enough and close
// enough to its limit that the model should start closing out.
func (o *Orchestrator) shouldWindDown(turnCount, maxTurns int) bool {
	turnsRemaining := maxTurns - turnCount
	return turnCount >= o.cfg.MinTurnsBeforeWindDown && turnsRemaining <= o.cfg.WindDownTurns
}

// recordEvent submits an analytics write to the background pool.
func (o *Orchestrator) recordEvent(in TurnInput, eventType string, metadata map[string]interface{}) {
	clientID, convID := in.ClientID, in.ConversationID
	o.pool.Submit("analytics_"+eventType, func(taskCtx context.Context) {
		if err := o.events.Record(taskCtx, clientID, convID, eventType, metadata); err != nil {
			o.logger.Warn("Analytics emit failed", "event_type", eventType, "error", err)
		}
	})
}
