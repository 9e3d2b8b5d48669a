//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=billing_test
package billing

import "github.com/IBM/sarama"

type MessageSender interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
