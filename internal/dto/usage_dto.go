package dto

type GetUsageResponse struct {
	Used      int  `json:"used"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
	CanUseAI  bool `json:"can_use_ai"`
}
