package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phrazzld/factqa/internal/domain"
	"github.com/phrazzld/factqa/internal/events"
	"github.com/phrazzld/factqa/internal/facts"
	"github.com/phrazzld/factqa/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuestioner is a mock implementation of Questioner
type MockQuestioner struct {
	mock.Mock
}

func (m *MockQuestioner) Synthesize(ctx context.Context, fact domain.Fact) (string, error) {
	args := m.Called(ctx, fact)
	return args.String(0), args.Error(1)
}

// MockPairTranslator is a mock implementation of PairTranslator
type MockPairTranslator struct {
	mock.Mock
}

func (m *MockPairTranslator) Translate(
	ctx context.Context,
	pair domain.DialogPair,
	language string,
) (*Translation, error) {
	args := m.Called(ctx, pair, language)
	translation, _ := args.Get(0).(*Translation)
	return translation, args.Error(1)
}

func newEmitter(summary *events.Summary) *events.InMemoryEmitter {
	emitter := events.NewInMemoryEmitter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	emitter.RegisterHandler(summary)
	return emitter
}

// scriptedModel answers question prompts and translation prompts from lookup
// tables keyed by a substring of the prompt.
func scriptedModel(questions, translations map[string]string) *mocks.MockModel {
	return &mocks.MockModel{AskFn: func(_ context.Context, prompt string) (string, error) {
		table := questions
		if strings.Contains(prompt, "Translate the following") {
			table = translations
		}
		for key, reply := range table {
			if strings.Contains(prompt, key) {
				return reply, nil
			}
		}
		return "", errors.New("error after 10 attempts: unexpected prompt")
	}}
}

func TestGenerateEndToEnd(t *testing.T) {
	t.Parallel()

	loaded, err := facts.Parse(strings.NewReader("I like cats\n- I live in Berlin\n<tag>ignored</tag>\n"), 0)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	model := scriptedModel(
		map[string]string{
			"I like cats":      "What animals do you like?",
			"I live in Berlin": "Where do you live?",
		},
		map[string]string{
			"What animals do you like?": "<question>¿Qué animales te gustan?</question><answer>Me gustan los gatos</answer>",
			"Where do you live?":        "<question>¿Dónde vives?</question><answer>Vivo en Berlín</answer>",
		},
	)

	catalog := newCatalog(t)
	questions, err := NewQuestionSynthesizer(model, catalog, discardLogger())
	require.NoError(t, err)
	translator, err := NewTranslator(model, catalog, DefaultTranslationAttempts, discardLogger())
	require.NoError(t, err)
	summary := &events.Summary{}
	orchestrator, err := NewOrchestrator(questions, translator, newEmitter(summary), discardLogger())
	require.NoError(t, err)

	pairs, err := orchestrator.Generate(context.Background(), loaded, []string{"Spanish"})
	require.NoError(t, err)

	expected := []domain.DialogPair{
		{Instruction: "What animals do you like?", Answer: "I like cats"},
		{Instruction: "¿Qué animales te gustan?", Answer: "Me gustan los gatos"},
		{Instruction: "Where do you live?", Answer: "I live in Berlin"},
		{Instruction: "¿Dónde vives?", Answer: "Vivo en Berlín"},
	}
	if diff := cmp.Diff(expected, pairs); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, events.Summary{FactsStarted: 2, PairsEmitted: 4}, *summary)
}

func TestGenerateSkips(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cats := domain.Fact("I like cats")
	berlin := domain.Fact("I live in Berlin")
	tea := domain.Fact("I drink tea")

	catsPair := domain.DialogPair{Instruction: "What animals do you like?", Answer: "I like cats"}
	teaPair := domain.DialogPair{Instruction: "What do you drink?", Answer: "I drink tea"}
	teaRU := domain.DialogPair{Instruction: "Что вы пьёте?", Answer: "Я пью чай"}

	questions := &MockQuestioner{}
	questions.On("Synthesize", ctx, cats).Return(catsPair.Instruction, nil)
	questions.On("Synthesize", ctx, berlin).Return("", ErrQuestionFailed)
	questions.On("Synthesize", ctx, tea).Return(teaPair.Instruction, nil)

	translator := &MockPairTranslator{}
	translator.On("Translate", ctx, catsPair, "English").
		Return(&Translation{Pair: catsPair, Already: true, State: StateAlready, Attempts: 1}, nil)
	translator.On("Translate", ctx, catsPair, "Russian").
		Return(nil, &TranslationError{Language: "Russian", Attempts: 10, LastState: StateRefused})
	translator.On("Translate", ctx, teaPair, "English").
		Return(&Translation{Pair: teaPair, Already: true, State: StateAlready, Attempts: 1}, nil)
	translator.On("Translate", ctx, teaPair, "Russian").
		Return(&Translation{Pair: teaRU, State: StateParsed, Attempts: 3}, nil)

	summary := &events.Summary{}
	orchestrator, err := NewOrchestrator(questions, translator, newEmitter(summary), discardLogger())
	require.NoError(t, err)

	pairs, err := orchestrator.Generate(ctx, []domain.Fact{cats, berlin, tea}, []string{"English", "Russian"})
	require.NoError(t, err)

	if diff := cmp.Diff([]domain.DialogPair{catsPair, teaPair, teaRU}, pairs); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, events.Summary{
		FactsStarted:        3,
		FactsSkipped:        1,
		PairsEmitted:        3,
		TranslationsAlready: 2,
		TranslationsSkipped: 1,
	}, *summary)

	questions.AssertExpectations(t)
	translator.AssertExpectations(t)
	translator.AssertNotCalled(t, "Translate", mock.Anything, mock.MatchedBy(func(p domain.DialogPair) bool {
		return p.Answer == berlin.String()
	}), mock.Anything)
}

func TestGenerateStopsOnCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	first := domain.Fact("I like cats")
	second := domain.Fact("I live in Berlin")
	firstPair := domain.DialogPair{Instruction: "What animals do you like?", Answer: first.String()}

	questions := &MockQuestioner{}
	questions.On("Synthesize", ctx, first).Return(firstPair.Instruction, nil)

	translator := &MockPairTranslator{}
	translator.On("Translate", ctx, firstPair, "Spanish").
		Run(func(mock.Arguments) { cancel() }).
		Return(nil, context.Canceled)

	orchestrator, err := NewOrchestrator(questions, translator, newEmitter(&events.Summary{}), discardLogger())
	require.NoError(t, err)

	pairs, err := orchestrator.Generate(ctx, []domain.Fact{first, second}, []string{"Spanish"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []domain.DialogPair{firstPair}, pairs)
	questions.AssertNotCalled(t, "Synthesize", mock.Anything, second)
}

func TestGenerateNoLanguages(t *testing.T) {
	t.Parallel()

	model := scriptedModel(map[string]string{"I like cats": "What animals do you like?"}, nil)
	catalog := newCatalog(t)
	questions, err := NewQuestionSynthesizer(model, catalog, discardLogger())
	require.NoError(t, err)
	translator, err := NewTranslator(model, catalog, 1, discardLogger())
	require.NoError(t, err)
	orchestrator, err := NewOrchestrator(questions, translator, newEmitter(&events.Summary{}), discardLogger())
	require.NoError(t, err)

	pairs, err := orchestrator.Generate(context.Background(), []domain.Fact{"I like cats"}, nil)

	require.NoError(t, err)
	assert.Equal(t, []domain.DialogPair{{Instruction: "What animals do you like?", Answer: "I like cats"}}, pairs)
	assert.Equal(t, 1, model.Calls())
}

func TestNewOrchestratorValidation(t *testing.T) {
	t.Parallel()

	emitter := newEmitter(&events.Summary{})
	_, err := NewOrchestrator(nil, &MockPairTranslator{}, emitter, discardLogger())
	assert.Error(t, err)
	_, err = NewOrchestrator(&MockQuestioner{}, nil, emitter, discardLogger())
	assert.Error(t, err)
	_, err = NewOrchestrator(&MockQuestioner{}, &MockPairTranslator{}, nil, discardLogger())
	assert.Error(t, err)
	_, err = NewOrchestrator(&MockQuestioner{}, &MockPairTranslator{}, emitter, nil)
	assert.Error(t, err)
}
