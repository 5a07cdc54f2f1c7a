package event

type RegistrationEvent struct {
	Uid int64 `json:"uid"`
}

func (RegistrationEvent) Topic() string {
	return "user_registration_events"
}
