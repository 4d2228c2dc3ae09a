package constants

// Redis key formats
const (
	KeyPositionEstimate = "position:estimate:%s" // Format: position:estimate:{anchors_hash}
	KeyBeaconPosition   = "beacon:position:%s"   // Format: beacon:position:{beacon_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{route}:{key}
)

// DefaultMQTTPort is assumed when a broker is registered without a port
const DefaultMQTTPort = 1883
