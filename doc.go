// Package huffcode builds static, optimal prefix-free binary codes with the
// classical greedy Huffman merge.
//
// The work happens in three stages, each consuming the previous stage's
// output:
//
//     seq []Symbol  --Count-->  FrequencyTable
//                   --BuildTree-->  Tree
//                   --AssignCodes-->  CodeTable
//
// Codes are assigned from the raw tree shape; they are not canonical Huffman
// codes.  Callers that need canonical codes can derive them from the code
// lengths.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Kraft%E2%80%93McMillan_inequality>
//
package huffcode
