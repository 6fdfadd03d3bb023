package metric

var billingServices = []string{
	"AWSSupportDeveloper",
	"AmazonGlacier",
	"AmazonCloudFront",
	"AmazonSimpleDB",
	"AmazonSNS",
	"AmazonSES",
	"AmazonS3",
	"ElasticMapReduce",
	"AmazonRDS",
	"AmazonDynamoDB",
	"AWSDataTransfer",
	"AmazonEC2",
	"AWSQueueService",
}

// BillingServices returns the ordered billed services that will be queried.
// Every call returns a new slice.
func BillingServices() []string {
	svcs := make([]string, len(billingServices))
	copy(svcs, billingServices)
	return svcs
}
