package models

// Tweet is a single status update fetched from the timeline. CreatedAt
// keeps the platform's original timestamp string.
type Tweet struct {
	ID        string `json:"id_str"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	Retweets  int    `json:"retweet_count"`
	Likes     int    `json:"favorite_count"`
}

// --- v2 create tweet ---

type TweetRequest struct {
	Text  string      `json:"text"`
	Media *TweetMedia `json:"media,omitempty"`
}

type TweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

type TweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// --- v1.1 media/upload (simple upload) ---

type MediaUploadResponse struct {
	MediaID       int64  `json:"media_id"`
	MediaIDString string `json:"media_id_string"`
}

// --- v1.1 direct_messages/events/new ---

type DirectMessageRequest struct {
	Event DirectMessageEvent `json:"event"`
}

type DirectMessageEvent struct {
	Type          string `json:"type"`
	MessageCreate struct {
		Target struct {
			RecipientID string `json:"recipient_id"`
		} `json:"target"`
		MessageData struct {
			Text string `json:"text"`
		} `json:"message_data"`
	} `json:"message_create"`
}

// NewDirectMessageRequest builds the message_create envelope the v1.1
// events endpoint expects.
func NewDirectMessageRequest(recipientID, text string) DirectMessageRequest {
	var req DirectMessageRequest
	req.Event.Type = "message_create"
	req.Event.MessageCreate.Target.RecipientID = recipientID
	req.Event.MessageCreate.MessageData.Text = text
	return req
}

// APIError is the error envelope Twitter returns on rejected requests.
type APIError struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}
