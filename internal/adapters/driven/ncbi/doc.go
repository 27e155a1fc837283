// Package ncbi implements driven.SearchClient against the NCBI BLAST URL API
// (https://blast.ncbi.nlm.nih.gov/Blast.cgi).
//
// A search is a single blocking call made of three HTTP exchanges:
//
//  1. Put: submit the query and receive a request ID (RID) and an
//     estimated time to completion (RTOE).
//  2. SearchInfo: poll the RID until the service reports READY.
//  3. Get: download the report as BlastOutput XML and decode it.
//
// Every request waits on a shared token bucket so that the client never
// contacts the service more often than NCBI's usage guidelines allow.
// Failures are returned as-is; the client never resubmits a query.
package ncbi
