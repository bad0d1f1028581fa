package cmd

// Config carries all environment-provided settings for the order service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Pricing settings; empty values fall back to the defaults.
	TaxRate               string
	ShippingBaseRate      string
	ShippingFreeThreshold string
	ShippingEnabled       string
	MaxItemQuantity       string

	// Notification settings. An empty AMQPURL selects the log publisher.
	NotificationsEnabled  string
	AMQPURL               string
	NotificationQueueName string

	// Payment settings. An empty PaymentServiceURL selects local refunds.
	PaymentServiceURL string
}
