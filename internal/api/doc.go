// Package api implements the EKDSend HTTP request pipeline.
//
// Every resource method in the public SDK funnels through Client.Do, which
// applies bearer authentication, serializes the request, classifies the
// response, and retries transient failures with exponential backoff. The
// package has no knowledge of individual resources; it deals only in
// methods, paths, query values, and JSON bodies.
package api
