package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"triptalk/internal/models/request_models"
	"triptalk/pkg/utils"
)

func validTravelInput() request_models.TravelInput {
	return request_models.TravelInput{
		Companions:  "친구 2명",
		Destination: "부산",
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-03",
		Style:       []string{"맛집", "바다"},
		Budget:      "50만원",
	}
}

func TestCreateTravelPlan_ReturnsModelTextVerbatim(t *testing.T) {
	llm := &stubLLM{reply: "  1일차\n- 오전: 해운대  \n"}
	svc := NewTravelPlanService(llm, zap.NewNop())

	plan, err := svc.CreateTravelPlan(context.Background(), validTravelInput())
	require.NoError(t, err)
	require.Equal(t, "  1일차\n- 오전: 해운대  \n", plan)

	require.Len(t, llm.prompts, 1)
	require.Contains(t, llm.prompts[0], "부산")
	require.Contains(t, llm.prompts[0], "2024-05-01 ~ 2024-05-03")
	require.Contains(t, llm.prompts[0], "맛집, 바다")
}

func TestCreateTravelPlan_EmptyStyle(t *testing.T) {
	llm := &stubLLM{}
	svc := NewTravelPlanService(llm, zap.NewNop())

	for _, style := range [][]string{{}, nil} {
		input := validTravelInput()
		input.Style = style

		plan, err := svc.CreateTravelPlan(context.Background(), input)
		require.NoError(t, err)
		require.NotEmpty(t, plan)
	}
	require.Len(t, llm.prompts, 2)
}

func TestCreateTravelPlan_EmptyTextIsSentAsIs(t *testing.T) {
	llm := &stubLLM{}
	svc := NewTravelPlanService(llm, zap.NewNop())

	input := validTravelInput()
	input.StartDate = ""
	input.EndDate = ""
	input.Companions = ""

	plan, err := svc.CreateTravelPlan(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, plan)

	require.Len(t, llm.prompts, 1)
	require.Contains(t, llm.prompts[0], "- 여행 기간:  ~ \n")
	require.Contains(t, llm.prompts[0], "- 동행자: \n")
}

func TestCreateTravelPlan_ProviderErrorPassesThrough(t *testing.T) {
	providerErr := &utils.ProviderError{Kind: utils.ErrProviderQuota, Provider: "stub"}
	svc := NewTravelPlanService(&stubLLM{err: providerErr}, zap.NewNop())

	_, err := svc.CreateTravelPlan(context.Background(), validTravelInput())
	require.ErrorIs(t, err, utils.ErrProviderQuota)
}
