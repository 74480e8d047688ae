package azure

type ServicePrincipal struct {
	ID          string `json:"id"`
	AppId       string `json:"appId"`
	DisplayName string `json:"displayName"`
}

type ServicePrincipalsListResponse struct {
	OdataContext  string             `json:"@odata.context"`
	OdataCount    int                `json:"@odata.count"`
	OdataNextLink string             `json:"@odata.nextLink"`
	Value         []ServicePrincipal `json:"value"`
}

type SynchronizationJob struct {
	ID         string `json:"id"`
	TemplateId string `json:"templateId"`
}

type SynchronizationJobsListResponse struct {
	OdataContext  string               `json:"@odata.context"`
	OdataNextLink string               `json:"@odata.nextLink"`
	Value         []SynchronizationJob `json:"value"`
}

type odataErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
