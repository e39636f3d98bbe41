package services

import (
	"fmt"
	"strings"

	"triptalk/internal/models/request_models"
)

const travelPlanPromptTemplate = `다음 정보를 기반으로 여행 일정을 만들어줘.

- 여행지: %s
- 동행자: %s
- 여행 기간: %s ~ %s
- 여행 스타일: %s
- 예산: %s

요청 조건:
1. 일자별(1일차, 2일차...) 일정으로 구성
2. 오전/오후/저녁 단위로 나누고 짧은 설명을 추가
3. 여행지의 주요 관광지나 맛집 위주로 추천
4. 한국어로 작성
`

// BuildTravelPlanPrompt fills the itinerary template. Values are inserted as
// given; only the style tags are joined.
func BuildTravelPlanPrompt(input request_models.TravelInput) string {
	return fmt.Sprintf(travelPlanPromptTemplate,
		input.Destination,
		input.Companions,
		input.StartDate,
		input.EndDate,
		strings.Join(input.Style, ", "),
		input.Budget,
	)
}
