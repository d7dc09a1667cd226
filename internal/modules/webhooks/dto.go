package webhooks

const EventUserUpgraded = "user.upgraded"

type PolkaEvent struct {
	Event string `json:"event"`
	Data  struct {
		UserID string `json:"userId"`
	} `json:"data"`
}
