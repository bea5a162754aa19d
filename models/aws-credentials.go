package models

import "time"

// AWSCredentials holds one set of temporary credentials returned by STS.
// They live for the duration of the process and are never persisted.
type AWSCredentials struct {
	AccessKeyID     Secret
	SecretAccessKey Secret
	SessionToken    Secret
	Expiration      time.Time
}
