/*
Package shopsdk is a Go client for the storefront API and the home of its wire
types.

The server's handlers encode these types directly, so the client and server
cannot drift apart.

# Sessions

The API issues its session as an HttpOnly cookie named "token". Client keeps
a cookie jar, so authenticating once is enough for subsequent guarded calls:

	c := shopsdk.NewClient("http://localhost:8000")

	user, err := c.Login(ctx, "user@example.com", "123456")
	if err != nil {
		return err
	}

	items, _, err := c.AddToCart(ctx, productID, 2)

Callers that hold a token some other way can set BearerToken instead; the
server accepts the token from either place and prefers the cookie.

# Errors

Every non-2xx response is returned as *APIError carrying the HTTP status, the
user-facing message and, for validation failures, per-field details:

	_, err := c.Login(ctx, "user@example.com", "wrong")
	var apiErr *shopsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		fmt.Println(apiErr.Message) // Invalid email or password
	}
*/
package shopsdk
