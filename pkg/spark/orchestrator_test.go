package spark

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trykin/spark/pkg/config"
	"github.com/trykin/spark/pkg/llm"
	"github.com/trykin/spark/pkg/models"
	"github.com/trykin/spark/pkg/preflight"
	"github.com/trykin/spark/pkg/settling"
)

type storedMessage struct {
	role, content string
}

type fakeSessions struct {
	priorSignals    int
	history         []models.ChatMessage
	historyErr      error
	turnAfter       int
	incrementErr    error
	appended        []storedMessage
	endedState      string
	endedOutcome    string
	boundaryBumps   int
	incrementCalled bool
}

func (f *fakeSessions) BoundarySignals(_ context.Context, _ string) int { return f.priorSignals }

func (f *fakeSessions) IncrementBoundarySignals(_ context.Context, _ string) error {
	f.boundaryBumps++
	return nil
}

func (f *fakeSessions) History(_ context.Context, _ string, _ int) ([]models.ChatMessage, error) {
	return f.history, f.historyErr
}

func (f *fakeSessions) Append(_ context.Context, _, role, content string) error {
	f.appended = append(f.appended, storedMessage{role, content})
	return nil
}

func (f *fakeSessions) IncrementTurn(_ context.Context, _ string) (int, error) {
	f.incrementCalled = true
	return f.turnAfter, f.incrementErr
}

func (f *fakeSessions) End(_ context.Context, _, state, outcome string) error {
	f.endedState, f.endedOutcome = state, outcome
	return nil
}

type fakePreflight struct {
	result preflight.Result

	sawHistory      []models.ChatMessage
	sawPriorSignals int
}

func (f *fakePreflight) Run(_ context.Context, _, _ string, history []models.ChatMessage, priorSignals int) preflight.Result {
	f.sawHistory = history
	f.sawPriorSignals = priorSignals
	return f.result
}

type fakeStreamer struct {
	chunks []string
	err    error

	called     bool
	sawRequest llm.Request
}

func (f *fakeStreamer) Stream(_ context.Context, req llm.Request) (<-chan string, <-chan error) {
	f.called = true
	f.sawRequest = req
	chunks := make(chan string, len(f.chunks))
	errs := make(chan error, 1)
	for _, c := range f.chunks {
		chunks <- c
	}
	close(chunks)
	if f.err != nil {
		errs <- f.err
	}
	close(errs)
	return chunks, errs
}

type recordedEvent struct {
	eventType string
	metadata  map[string]interface{}
}

type fakeEvents struct {
	recorded []recordedEvent
}

func (f *fakeEvents) Record(_ context.Context, _, _, eventType string, metadata map[string]interface{}) error {
	f.recorded = append(f.recorded, recordedEvent{eventType, metadata})
	return nil
}

// syncPool runs submitted tasks inline so tests see their effects
// immediately.
type syncPool struct{}

func (syncPool) Submit(_ string, task func(ctx context.Context)) bool {
	task(context.Background())
	return true
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, nil))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

type fixture struct {
	orch     *Orchestrator
	sessions *fakeSessions
	pf       *fakePreflight
	streamer *fakeStreamer
	events   *fakeEvents
}

func newFixture(mode config.PreflightMode) *fixture {
	cfg := &config.Settings{
		MaxTurnsDefault:        20,
		WindDownTurns:          3,
		MinTurnsBeforeWindDown: 5,
		ContextTurns:           8,
		PreflightMode:          mode,
	}
	sessions := &fakeSessions{turnAfter: 2}
	pf := &fakePreflight{result: preflight.Result{ConversationState: preflight.StateActive}}
	streamer := &fakeStreamer{chunks: []string{"Hello", " there"}}
	events := &fakeEvents{}

	return &fixture{
		orch: NewOrchestrator(cfg, sessions, pf, streamer, events,
			settling.NewBuilder(discardLogger()), syncPool{}, discardLogger()),
		sessions: sessions,
		pf:       pf,
		streamer: streamer,
		events:   events,
	}
}

func collect(t *testing.T, ch <-chan Event) []Event {
	t.Helper()
	var events []Event
	for e := range ch {
		events = append(events, e)
	}
	return events
}

func turnInput() TurnInput {
	return TurnInput{
		Message:        "What do you sell?",
		ClientID:       "client-a",
		ConversationID: "conv-1",
		MaxTurns:       20,
	}
}

func TestProcessMessage_CleanTurn(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.pf.result.RetrievedChunks = []models.Chunk{{Title: "Pricing", Content: "stuff", Similarity: 0.8}}
	f.pf.result.InScope = true

	events := collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	require.GreaterOrEqual(t, len(events), 3)
	assert.Equal(t, EventToken, events[0].Name)
	assert.Equal(t, "Hello", events[0].Data["text"])
	assert.Equal(t, EventToken, events[1].Name)

	last := events[len(events)-1]
	assert.Equal(t, EventDone, last.Name)
	assert.Equal(t, 18, last.Data["turns_remaining"])

	// User message stored before assistant, assistant is the joined stream.
	require.Len(t, f.sessions.appended, 2)
	assert.Equal(t, storedMessage{models.RoleUser, "What do you sell?"}, f.sessions.appended[0])
	assert.Equal(t, storedMessage{models.RoleAssistant, "Hello there"}, f.sessions.appended[1])

	// Prompt went in as the system message, ending with the user message.
	msgs := f.streamer.sawRequest.Messages
	require.NotEmpty(t, msgs)
	assert.Equal(t, models.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Pricing")
	assert.Equal(t, models.RoleUser, msgs[len(msgs)-1].Role)
}

func TestProcessMessage_TerminateSkipsModel(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.pf.result.Terminate = true

	events := collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	require.Len(t, events, 1)
	assert.Equal(t, EventDone, events[0].Name)
	assert.Equal(t, true, events[0].Data["terminated"])

	assert.False(t, f.streamer.called, "terminate must not reach the model")
	assert.False(t, f.sessions.incrementCalled, "terminated turns don't count")
	assert.Equal(t, "terminated", f.sessions.endedState)
	assert.Equal(t, "terminated", f.sessions.endedOutcome)
	require.Len(t, f.sessions.appended, 1)
	assert.Equal(t, models.RoleUser, f.sessions.appended[0].role)
}

func TestProcessMessage_BoundarySignalFlowsToPrompt(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.pf.result.BoundarySignal = preflight.SignalPromptProbing

	events := collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	assert.True(t, f.streamer.called, "signals mode still answers")
	assert.Equal(t, 1, f.sessions.boundaryBumps)
	assert.Contains(t, f.streamer.sawRequest.Messages[0].Content, "asking about your instructions",
		"tactical paragraph reaches the model")

	last := events[len(events)-1]
	assert.Equal(t, EventDone, last.Name)

	// Signal lands in analytics metadata.
	require.NotEmpty(t, f.events.recorded)
	assert.Equal(t, "prompt_probing", f.events.recorded[0].metadata["boundary_signal"])
}

func TestProcessMessage_GateModeDeflects(t *testing.T) {
	f := newFixture(config.PreflightModeGate)
	f.pf.result.BoundarySignal = preflight.SignalIdentityBreaking

	events := collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	assert.False(t, f.streamer.called, "gate mode skips the model")
	assert.False(t, f.sessions.incrementCalled)

	// Deflection streamed word by word, then a bare done.
	var text string
	for _, e := range events[:len(events)-1] {
		require.Equal(t, EventToken, e.Name)
		text += e.Data["text"].(string)
	}
	assert.Contains(t, text, "I'm not able to do that.")
	assert.Equal(t, EventDone, events[len(events)-1].Name)

	require.Len(t, f.events.recorded, 1)
	assert.Equal(t, "jailbreak_blocked", f.events.recorded[0].eventType)
	assert.Equal(t, "firm", f.events.recorded[0].metadata["tier"])
	assert.Empty(t, f.sessions.endedState, "non-terminate deflection keeps the session alive")
}

func TestProcessMessage_GateModeUsesTenantDeflections(t *testing.T) {
	f := newFixture(config.PreflightModeGate)
	f.pf.result.BoundarySignal = preflight.SignalPromptProbing

	in := turnInput()
	in.SettlingConfig.JailbreakResponses = map[string]string{"subtle": "Nice try."}

	events := collect(t, f.orch.ProcessMessage(context.Background(), in))

	var text string
	for _, e := range events[:len(events)-1] {
		text += e.Data["text"].(string)
	}
	assert.Contains(t, text, "Nice try.")
}

func TestProcessMessage_MaxTurnsFarewell(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.sessions.turnAfter = 20

	events := collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	assert.False(t, f.streamer.called, "turn limit skips the model")

	var text string
	for _, e := range events[:len(events)-1] {
		require.Equal(t, EventToken, e.Name)
		text += e.Data["text"].(string)
	}
	assert.Contains(t, text, "Thanks for chatting!")

	last := events[len(events)-1]
	assert.Equal(t, EventDone, last.Name)
	assert.Equal(t, 0, last.Data["turns_remaining"])
	assert.Equal(t, "completed", f.sessions.endedState)

	// Both the user message and the farewell are in the transcript.
	require.Len(t, f.sessions.appended, 2)
	assert.Equal(t, models.RoleAssistant, f.sessions.appended[1].role)
	assert.Contains(t, f.sessions.appended[1].content, "Thanks for chatting!")
}

func TestProcessMessage_WindDownEvent(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.sessions.turnAfter = 18 // remaining 2 <= 3, turn >= 5

	events := collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	require.GreaterOrEqual(t, len(events), 2)
	windDown := events[len(events)-2]
	assert.Equal(t, EventWindDown, windDown.Name)
	assert.Equal(t, 2, windDown.Data["turns_remaining"])
	assert.Equal(t, EventDone, events[len(events)-1].Name)
}

func TestProcessMessage_NoWindDownOnShortConversations(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.sessions.turnAfter = 3

	in := turnInput()
	in.MaxTurns = 5 // remaining 2 <= 3, but turn 3 < min 5

	events := collect(t, f.orch.ProcessMessage(context.Background(), in))
	for _, e := range events {
		assert.NotEqual(t, EventWindDown, e.Name)
	}
}

func TestProcessMessage_StreamFailureEmitsError(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.streamer.chunks = nil
	f.streamer.err = errors.New("both models down")

	events := collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	last := events[len(events)-1]
	assert.Equal(t, EventError, last.Name)
	assert.Equal(t, "I hit a snag. Please try again.", last.Data["message"])

	// The user message is stored; no assistant message is.
	require.Len(t, f.sessions.appended, 1)
	assert.Equal(t, models.RoleUser, f.sessions.appended[0].role)
}

func TestProcessMessage_FirstMessageAnalytics(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.sessions.turnAfter = 1

	collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	require.NotEmpty(t, f.events.recorded)
	assert.Equal(t, "first_message", f.events.recorded[0].eventType)
}

func TestProcessMessage_OutOfScopeAnalytics(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.pf.result.InScope = false

	collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	types := make([]string, len(f.events.recorded))
	for i, e := range f.events.recorded {
		types[i] = e.eventType
	}
	assert.Contains(t, types, "out_of_scope")
}

func TestProcessMessage_HistoryPassedToPreflight(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.sessions.priorSignals = 2
	f.sessions.history = []models.ChatMessage{
		{Role: models.RoleUser, Content: "earlier"},
		{Role: models.RoleAssistant, Content: "reply"},
	}

	collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	assert.Equal(t, 2, f.pf.sawPriorSignals)
	assert.Len(t, f.pf.sawHistory, 2)
}

func TestProcessMessage_EmptyHistoryMessagesSkipped(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.sessions.history = []models.ChatMessage{
		{Role: models.RoleUser, Content: "real question"},
		{Role: models.RoleAssistant, Content: ""},
	}

	collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	for _, m := range f.streamer.sawRequest.Messages {
		assert.NotEmpty(t, m.Content, "empty messages must not reach the provider")
	}
}

func TestProcessMessage_TurnIncrementFailure(t *testing.T) {
	f := newFixture(config.PreflightModeSignals)
	f.sessions.incrementErr = errors.New("db down")

	events := collect(t, f.orch.ProcessMessage(context.Background(), turnInput()))

	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Name)
	assert.False(t, f.streamer.called)
}
