package registry

import (
	"github.com/lumenlearn/pagecraft/internal/api"
	"github.com/lumenlearn/pagecraft/internal/drafts"
	"github.com/lumenlearn/pagecraft/internal/hub"
	"github.com/lumenlearn/pagecraft/internal/i18n"
	"github.com/lumenlearn/pagecraft/internal/pubsub"
)

// Shared service keys. Using typed constants prevents typos and keeps the
// service surface of the application discoverable in one place.
var (
	APIClientKey  = Key[*api.Client]("api.client")
	PublisherKey  = Key[pubsub.Publisher]("pubsub.publisher")
	SubscriberKey = Key[pubsub.Subscriber]("pubsub.subscriber")
	PreviewHubKey = Key[*hub.Hub]("preview.hub")
	DraftStoreKey = Key[*drafts.Store]("drafts.store")
	TranslatorKey = Key[*i18n.Translator]("i18n.translator")
)
