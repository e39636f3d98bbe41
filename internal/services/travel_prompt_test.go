package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTravelPlanPrompt(t *testing.T) {
	prompt := BuildTravelPlanPrompt(validTravelInput())

	require.True(t, strings.HasPrefix(prompt, "다음 정보를 기반으로 여행 일정을 만들어줘."))
	require.Contains(t, prompt, "- 여행지: 부산")
	require.Contains(t, prompt, "- 동행자: 친구 2명")
	require.Contains(t, prompt, "- 여행 기간: 2024-05-01 ~ 2024-05-03")
	require.Contains(t, prompt, "- 여행 스타일: 맛집, 바다")
	require.Contains(t, prompt, "50만원")
	require.NotContains(t, prompt, "%!")
}

func TestBuildTravelPlanPrompt_EmptyStyle(t *testing.T) {
	input := validTravelInput()
	input.Style = nil

	prompt := BuildTravelPlanPrompt(input)
	require.Contains(t, prompt, "- 여행 스타일: \n")
}
