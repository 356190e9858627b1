package controller

type UnauthorizedErr struct{}

func (e *UnauthorizedErr) Error() string {
	return "admin session required"
}

func NewUnauthorizedError() *UnauthorizedErr {
	return &UnauthorizedErr{}
}

type ThrottledErr struct{}

func (e *ThrottledErr) Error() string {
	return "too many submissions, try again shortly"
}

func NewThrottledError() *ThrottledErr {
	return &ThrottledErr{}
}
