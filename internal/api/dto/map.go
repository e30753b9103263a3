package dto

type AgentResponse struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Transport string `json:"transport"`
}

type MapResponse struct {
	Rows   int             `json:"rows"`
	Cols   int             `json:"cols"`
	Layout []string        `json:"layout"`
	Agents []AgentResponse `json:"agents"`
}
