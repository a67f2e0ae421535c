package response_models

type SeedSummary struct {
	Destinations int `json:"destinations"`
	Experiences  int `json:"experiences"`
	Accounts     int `json:"accounts"`
	Trips        int `json:"trips"`
}
