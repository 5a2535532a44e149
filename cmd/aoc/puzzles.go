package main

import (
	_ "github.com/puzzlebox/aoc/y2019/day02"
	_ "github.com/puzzlebox/aoc/y2019/day05"
	_ "github.com/puzzlebox/aoc/y2019/day07"
	_ "github.com/puzzlebox/aoc/y2019/day09"
	_ "github.com/puzzlebox/aoc/y2020/day11"
	_ "github.com/puzzlebox/aoc/y2021/day09"
	_ "github.com/puzzlebox/aoc/y2021/day11"
	_ "github.com/puzzlebox/aoc/y2024/day04"
	_ "github.com/puzzlebox/aoc/y2024/day06"
	_ "github.com/puzzlebox/aoc/y2024/day18"
)
