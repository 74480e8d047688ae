package azuretest

import "context"

// MockGraphClient is used to mock the handler.GraphClient interface.
type MockGraphClient struct {
	FindServicePrincipalIdCalls []string
	FindServicePrincipalIdMock  func(string) (string, error)

	FindFirstSyncJobIdCalls []string
	FindFirstSyncJobIdMock  func(string) (string, error)

	StartSyncJobCalls []StartSyncJobCall
	StartSyncJobMock  func(string, string) error
}

type StartSyncJobCall struct {
	ServicePrincipalId string
	JobId              string
}

func (c *MockGraphClient) FindServicePrincipalId(ctx context.Context, displayName string) (string, error) {
	c.FindServicePrincipalIdCalls = append(c.FindServicePrincipalIdCalls, displayName)
	return c.FindServicePrincipalIdMock(displayName)
}

func (c *MockGraphClient) FindFirstSyncJobId(ctx context.Context, servicePrincipalId string) (string, error) {
	c.FindFirstSyncJobIdCalls = append(c.FindFirstSyncJobIdCalls, servicePrincipalId)
	return c.FindFirstSyncJobIdMock(servicePrincipalId)
}

func (c *MockGraphClient) StartSyncJob(ctx context.Context, servicePrincipalId string, jobId string) error {
	c.StartSyncJobCalls = append(c.StartSyncJobCalls, StartSyncJobCall{ServicePrincipalId: servicePrincipalId, JobId: jobId})
	return c.StartSyncJobMock(servicePrincipalId, jobId)
}
