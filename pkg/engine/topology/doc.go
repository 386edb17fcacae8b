// Package topology turns an occupancy grid into a room adjacency graph.
//
// Extraction runs in three passes over a read-only grid:
//
//  1. A flood fill numbers every 4-connected region of open cells.
//  2. Each room's boundary is walked clockwise, splitting it into
//     barriers: maximal runs of wall or gateway cells sharing a facing.
//  3. Every physical gateway becomes a pseudo-room of its own, bounded by
//     two one-cell walls and two gateways onto the rooms it joins.
//
// Ids are dense and start at 1. Wall and gateway barriers are numbered
// independently, so a barrier is named by its kind and id.
package topology
