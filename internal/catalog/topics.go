package catalog

const (
	TopicOrderSubmitted      = "catalog.order.submitted"
	TopicPriceListShared     = "catalog.pricelist.shared"
	TopicClientListPublished = "catalog.clientlist.published"
)

// PartitionKey keeps every event for one cart or list on one partition so
// ordering holds per entity.
func PartitionKey(id string) []byte { return []byte(id) }
