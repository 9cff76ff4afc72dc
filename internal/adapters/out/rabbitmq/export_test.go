package rabbitmq

var NewPublisher = newPublisher
