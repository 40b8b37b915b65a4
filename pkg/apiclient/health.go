package apiclient

// HealthStatus is the liveness payload reported by the daemon.
type HealthStatus struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Instance  string `json:"instance"`
	StartedAt string `json:"started_at"`
	Uptime    string `json:"uptime"`
	UptimeSec int64  `json:"uptime_sec"`
}

// ReadyStatus is the readiness payload reported by the daemon.
type ReadyStatus struct {
	Collector string `json:"collector"`
	MACLabels string `json:"mac_labels"`
}

// Health fetches the daemon's liveness report.
func (c *Client) Health() (*HealthStatus, error) {
	return getData[HealthStatus](c, "/health")
}

// Ready fetches the daemon's readiness report. A daemon that is running but
// cannot serve collection requests yet reports that through the returned
// *APIError.
func (c *Client) Ready() (*ReadyStatus, error) {
	return getData[ReadyStatus](c, "/health/ready")
}
