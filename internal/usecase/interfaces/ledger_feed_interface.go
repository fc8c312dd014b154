package interfaces

import "context"

// ILedgerFeed is the live change feed of the ledger store collections.
//
// Writers publish the collection they changed; subscribers get called with
// the collection name and re-read whatever they need.
type ILedgerFeed interface {
	Publish(ctx context.Context, collection string) error
	Subscribe(ctx context.Context, collections []string, onChange func(collection string)) (unsubscribe func(), err error)
}
