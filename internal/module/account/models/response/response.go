package response

type Login struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
