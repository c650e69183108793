// Package units converts ECG grid-box counts into physical units.
//
// All measurements are taken from standard ECG paper at 25 mm/s, where one
// small box spans 40 ms. Heart rate follows the 1500 rule: HR (bpm) equals
// 1500 divided by the number of small boxes between two consecutive R peaks.
//
// Undefined values are represented as IEEE NaN throughout the engine. A
// conversion that cannot be performed (a non-positive box count for heart
// rate) produces NaN rather than an error; downstream classification maps
// NaN to an Unknown status and display layers render it as "—".
package units
