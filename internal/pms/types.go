package pms

// Формы запросов/ответов Connector API (Mews-совместимый PMS).
// Аутентификация едет в теле каждого POST-запроса.

type authPayload struct {
	ClientToken string `json:"ClientToken"`
	AccessToken string `json:"AccessToken"`
	Client      string `json:"Client"`
}

type limitation struct {
	Count int `json:"Count"`
}

type timeFilter struct {
	StartUTC string `json:"StartUtc"`
	EndUTC   string `json:"EndUtc"`
}

type reservationsRequest struct {
	authPayload
	Limitation limitation `json:"Limitation"`
	TimeFilter timeFilter `json:"TimeFilter"`
	States     []string   `json:"States"`
}

type reservationsResponse struct {
	Reservations []reservationItem `json:"Reservations"`
}

type reservationItem struct {
	ID                 string `json:"Id"`
	AssignedResourceID string `json:"AssignedResourceId"`
	CustomerID         string `json:"CustomerId"`
	StartUTC           string `json:"StartUtc"`
	EndUTC             string `json:"EndUtc"`
	State              string `json:"State"`
}

type customersRequest struct {
	authPayload
	Limitation  limitation `json:"Limitation"`
	CustomerIDs []string   `json:"CustomerIds"`
}

type customersResponse struct {
	Customers []customerItem `json:"Customers"`
}

type customerItem struct {
	ID       string `json:"Id"`
	LastName string `json:"LastName"`
	Name     string `json:"Name"`
}

type resourcesRequest struct {
	authPayload
	Limitation limitation `json:"Limitation"`
}

type resourcesResponse struct {
	Resources []resourceItem `json:"Resources"`
}

type resourceItem struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}
