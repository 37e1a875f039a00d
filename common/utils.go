// Copyright 2022 Marcos Oliveira <mvoliveira.nlp@gmail.com>
// Copyright 2022 Grupo de Processamento de Linguagem Natural,
//                Universidade Tecnológica Federal do Paraná
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

func SumOfMapped[T any](v []T, mapFn func(item T) float64) float64 {
	var ans float64
	for _, item := range v {
		ans += mapFn(item)
	}
	return ans
}

func MapSlice[T any, U any](items []T, mapFn func(T, int) U) []U {
	ans := make([]U, len(items))
	for i, v := range items {
		ans[i] = mapFn(v, i)
	}
	return ans
}
