package storage

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// OpenNATSKV connects to a NATS server and opens (or creates) the JetStream
// key-value bucket the KV-backed stores share. Each collection lives under
// its own key in the bucket as one JSON array; every save is a full
// overwrite of that key.
// PRE: url points at a JetStream-enabled NATS server
// POST: Returns a ready bucket handle; the connection stays open for the
// process lifetime
func OpenNATSKV(url, bucket string) (nats.KeyValue, error) {
	nc, err := nats.Connect(url, nats.Name("wrapped"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream context: %w", err)
	}
	kv, err := js.KeyValue(bucket)
	if err == nats.ErrBucketNotFound {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket:      bucket,
			Description: "wrapped view/response collections",
			History:     1,
		})
	}
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("open kv bucket %q: %w", bucket, err)
	}
	return kv, nil
}
