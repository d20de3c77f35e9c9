package common

// RequestIDHeaderName is the gRPC metadata key used to carry the gateway
// request id to the user service.
const RequestIDHeaderName = "x-request-id"

// DefaultProfileImageURL is stored for accounts registered without a
// profile image.
const DefaultProfileImageURL = "https://media.istockphoto.com/id/1300845620/vector/user-icon-flat-isolated-on-white-background-user-symbol-vector-illustration.jpg?s=612x612&w=0&k=20&c=yBeyba0hUkh14_jgv1OKqIH0CCSWU_4ckRkAoy2p73o="
