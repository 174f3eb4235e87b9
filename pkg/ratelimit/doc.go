/*
Package ratelimit groups the limiting primitives used by llmgate.

  - concurrency: counting semaphore bounding in-flight operations

Rate-based throttling (token or leaky bucket) is deliberately absent: the gate
bounds how many calls are outstanding, not how often they start.
*/
package ratelimit
