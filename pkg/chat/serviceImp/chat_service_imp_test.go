package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"farmbot/entities"
	"farmbot/pkg/ai"
	"farmbot/pkg/chat/repositoryImp"
	"farmbot/pkg/chat/service"
	farmerRepo "farmbot/pkg/farmer/repositoryImp"
)

type stubLLM struct {
	reply  string
	err    error
	farmer *entities.Farmer
	asked  string
}

func (s *stubLLM) Name() string { return "stub" }

func (s *stubLLM) Answer(_ context.Context, q string, f *entities.Farmer) (string, error) {
	s.asked, s.farmer = q, f
	return s.reply, s.err
}

func (s *stubLLM) ProposeSuggestions(context.Context, *entities.Farmer, ai.SuggestionRequest) ([]entities.SuggestionDraft, error) {
	return nil, errors.New("not used")
}

func setup(t *testing.T, llm *stubLLM) (service.ChatService, *entities.Farmer) {
	t.Helper()
	farmers := farmerRepo.NewMemory()
	f := &entities.Farmer{Name: "Sita", District: "Idukki", Crops: []string{"Cardamom"}}
	require.NoError(t, farmers.Create(context.Background(), f))
	return NewChatService(repositoryImp.NewMemory(), farmers, llm, zap.NewNop()), f
}

func TestSendStoresAnswer(t *testing.T) {
	llm := &stubLLM{reply: "Shade your cardamom."}
	svc, f := setup(t, llm)

	m, err := svc.Send(context.Background(), service.SendRequest{FarmerID: f.ID, Message: "  Too much sun?  ", IsVoice: true})
	require.NoError(t, err)
	require.NotNil(t, m.Response)
	assert.Equal(t, "Shade your cardamom.", *m.Response)
	assert.Equal(t, "Too much sun?", m.Message)
	assert.True(t, m.IsVoice)
	require.NotNil(t, llm.farmer)
	assert.Equal(t, "Idukki", llm.farmer.District)

	hist, err := svc.History(context.Background(), f.ID)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "Shade your cardamom.", *hist[0].Response)
}

func TestSendFallbacks(t *testing.T) {
	tests := []struct {
		name string
		llm  *stubLLM
		want string
	}{
		{"provider error", &stubLLM{err: errors.New("timeout")}, service.ReplyUnavailable},
		{"empty reply", &stubLLM{reply: "   "}, service.ReplyEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, f := setup(t, tt.llm)
			m, err := svc.Send(context.Background(), service.SendRequest{FarmerID: f.ID, Message: "hi"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, *m.Response)
		})
	}
}

func TestSendUnknownFarmer(t *testing.T) {
	llm := &stubLLM{reply: "General advice."}
	svc, _ := setup(t, llm)

	m, err := svc.Send(context.Background(), service.SendRequest{FarmerID: "ghost", Message: "hello"})
	require.NoError(t, err)
	assert.Nil(t, llm.farmer)
	assert.Equal(t, "ghost", m.FarmerID)
}

func TestSendRequiresMessage(t *testing.T) {
	svc, f := setup(t, &stubLLM{})
	_, err := svc.Send(context.Background(), service.SendRequest{FarmerID: f.ID, Message: " "})
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Message is required"}, verr.Errors)
}
