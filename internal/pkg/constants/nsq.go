package constants

// NSQ topics
const (
	// Inbound from the MQTT bridge
	TopicBeaconRange    = "beacon.range"
	TopicBeaconDistance = "beacon.distance"

	// Outbound
	TopicVisitClosed       = "presence.visit_closed"
	TopicPositionEstimated = "position.estimated"
)

// DefaultNSQChannel is used when no channel is configured
const DefaultNSQChannel = "sitetrack"
